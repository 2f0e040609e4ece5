package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/search"
)

const batchSize = 500

var leadingInt = regexp.MustCompile(`^(\d+)`)

// Loads the recipes CSV into the catalog table. Raw Images strings are
// stored verbatim so the image codec can normalize them at read time.
func main() {
	csvPath := flag.String("csv", "resource/recipes.csv", "path to the recipes CSV")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *csvPath, err)
	}
	defer f.Close()

	start := time.Now()
	count, err := load(db, f)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	log.Printf("Ingested %d recipes in %s", count, time.Since(start).Round(time.Millisecond))
}

func load(db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"RecipeId", "Name"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("CSV is missing required column %s", required)
		}
	}

	total := 0
	batch := make([]model.Recipe, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := db.CreateInBatches(batch, batchSize).Error; err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("reading row: %w", err)
		}

		recipe, err := parseRow(col, row)
		if err != nil {
			log.Printf("Skipping row: %v", err)
			continue
		}
		batch = append(batch, recipe)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}

func parseRow(col map[string]int, row []string) (model.Recipe, error) {
	get := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	id, err := strconv.ParseInt(strings.TrimSpace(get("RecipeId")), 10, 64)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("bad RecipeId %q: %w", get("RecipeId"), err)
	}

	recipe := model.Recipe{
		RecipeID:            id,
		Name:                get("Name"),
		Description:         get("Description"),
		Instructions:        get("RecipeInstructions"),
		RecipeCategory:      get("RecipeCategory"),
		AggregatedRating:    parseNullable(get("AggregatedRating")),
		ReviewCount:         parseNullable(get("ReviewCount")),
		Calories:            parseNumeric(get("Calories")),
		FatContent:          parseNumeric(get("FatContent")),
		SaturatedFatContent: parseNumeric(get("SaturatedFatContent")),
		CholesterolContent:  parseNumeric(get("CholesterolContent")),
		SodiumContent:       parseNumeric(get("SodiumContent")),
		CarbohydrateContent: parseNumeric(get("CarbohydrateContent")),
		FiberContent:        parseNumeric(get("FiberContent")),
		SugarContent:        parseNumeric(get("SugarContent")),
		ProteinContent:      parseNumeric(get("ProteinContent")),
		RecipeServings:      parseNullable(get("RecipeServings")),
		RecipeYield:         parseYield(get("RecipeYield")),
	}
	if raw := get("Images"); raw != "" {
		recipe.Images = &raw
	}
	recipe.Embedding = search.Embed(recipe.Name + " " + recipe.Description)
	return recipe, nil
}

// parseNumeric maps blanks and NA markers to 0, matching how the
// dataset's missing required numerics are handled at index time.
func parseNumeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseNullable keeps missing values missing; the imputer fills them
// at preprocessing time instead.
func parseNullable(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseYield reduces values like "4 kebabs" to 4, and anything with no
// leading number to 0.
func parseYield(s string) int {
	m := leadingInt.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
