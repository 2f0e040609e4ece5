package service

import (
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/forkcast/backend/internal/model"
)

// BackfillImages fills the image field of image-less recipes in results
// with the image of their textually most similar neighbor from the same
// batch. It builds a tf-idf vector space over Name+Description+
// Instructions of the whole batch, computes cosine similarity between
// every missing and every available record, and assigns each missing
// record its best match's cleaned image. The vector space lives only
// for this call; nothing is shared between requests.
//
// Tokenization is lowercased runs of Unicode letters and digits; term
// weight is raw term frequency times the smoothed idf
// ln((1+N)/(1+df))+1, with L2 row normalization. Argmax ties go to the
// lowest available index. A recipe that already has a usable image is
// never touched, and no URL is ever invented: only images already
// present in the batch are assigned.
func BackfillImages(results []*model.Recipe) {
	var missing, withImage []*model.Recipe
	for _, r := range results {
		if CleanImageRef(r.Images) != nil {
			withImage = append(withImage, r)
		} else {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 || len(withImage) == 0 {
		return
	}

	docs := make([][]string, 0, len(missing)+len(withImage))
	for _, r := range missing {
		docs = append(docs, tokenize(r.Name+" "+r.Description+" "+r.Instructions))
	}
	for _, r := range withImage {
		docs = append(docs, tokenize(r.Name+" "+r.Description+" "+r.Instructions))
	}

	vectors := tfidfVectors(docs)
	missingVecs := vectors[:len(missing)]
	availableVecs := vectors[len(missing):]

	for i, r := range missing {
		best := -1
		bestSim := -1.0
		for j, av := range availableVecs {
			if sim := dot(missingVecs[i], av); sim > bestSim {
				best, bestSim = j, sim
			}
		}
		image := CleanImageRef(withImage[best].Images)
		if image == nil {
			log.Printf("backfill: best match %d for recipe %d has no usable image", withImage[best].RecipeID, r.RecipeID)
			continue
		}
		r.Images = image
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// tfidfVectors returns one L2-normalized sparse vector per document,
// keyed by term index in a vocabulary fit over exactly these documents.
func tfidfVectors(docs [][]string) []map[int]float64 {
	vocab := make(map[string]int)
	df := make(map[int]int)
	counts := make([]map[int]int, len(docs))

	for d, tokens := range docs {
		tf := make(map[int]int, len(tokens))
		for _, tok := range tokens {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
			}
			tf[idx]++
		}
		for idx := range tf {
			df[idx]++
		}
		counts[d] = tf
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for idx, d := range df {
		idf[idx] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for d, tf := range counts {
		vec := make(map[int]float64, len(tf))
		var norm float64
		for idx, count := range tf {
			w := float64(count) * idf[idx]
			vec[idx] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vec {
				vec[idx] /= norm
			}
		}
		vectors[d] = vec
	}
	return vectors
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, av := range a {
		sum += av * b[idx]
	}
	return sum
}
