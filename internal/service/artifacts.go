package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const artifactSchemaVersion = 1

// RegressionModel is the pre-trained linear rating model. It scores a
// feature vector as intercept + coefficients · features.
type RegressionModel struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Predict batch-scores rows. Every row must match the model's feature
// width; that is checked once at load time, not here.
func (m *RegressionModel) Predict(rows [][]float64) []float64 {
	scores := make([]float64, len(rows))
	for i, row := range rows {
		s := m.Intercept
		for j, v := range row {
			s += m.Coefficients[j] * v
		}
		scores[i] = s
	}
	return scores
}

type encoderArtifact struct {
	SchemaVersion int      `json:"schema_version"`
	Column        string   `json:"column"`
	Classes       []string `json:"classes"`
}

type imputerArtifact struct {
	SchemaVersion int       `json:"schema_version"`
	Strategy      string    `json:"strategy"`
	Columns       []string  `json:"columns"`
	Means         []float64 `json:"means"`
}

type modelArtifact struct {
	SchemaVersion int `json:"schema_version"`
	RegressionModel
}

// ArtifactLoader fetches artifact blobs from local paths or
// s3://bucket/key URIs. The S3 client is created lazily on the first
// s3 path so purely local deployments never touch AWS config.
type ArtifactLoader struct {
	s3Client *s3.Client
}

func NewArtifactLoader() *ArtifactLoader {
	return &ArtifactLoader{}
}

func (l *ArtifactLoader) fetch(ctx context.Context, path string) ([]byte, error) {
	if bucket, key, ok := splitS3Path(path); ok {
		if l.s3Client == nil {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
				awsconfig.WithRegion(os.Getenv("AWS_REGION")),
			)
			if err != nil {
				return nil, fmt.Errorf("loading aws config: %w", err)
			}
			l.s3Client = s3.NewFromConfig(awsCfg)
		}
		out, err := l.s3Client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: s3 fetch %s: %v", ErrArtifactMissing, path, err)
		}
		defer out.Body.Close()
		return io.ReadAll(out.Body)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactMissing, path, err)
	}
	return data, nil
}

func splitS3Path(path string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(path, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// LoadPreprocessor loads and validates the persisted category encoder
// and numeric imputer. Any mismatch with the compiled feature contract
// is fatal.
func (l *ArtifactLoader) LoadPreprocessor(ctx context.Context, encoderPath, imputerPath string) (*Preprocessor, error) {
	var enc encoderArtifact
	if err := l.loadJSON(ctx, encoderPath, &enc); err != nil {
		return nil, err
	}
	if enc.SchemaVersion != artifactSchemaVersion {
		return nil, fmt.Errorf("%w: encoder schema version %d, want %d", ErrArtifactSchema, enc.SchemaVersion, artifactSchemaVersion)
	}
	if enc.Column != "RecipeCategory" {
		return nil, fmt.Errorf("%w: encoder fit on column %q, want RecipeCategory", ErrArtifactSchema, enc.Column)
	}
	if len(enc.Classes) == 0 {
		return nil, fmt.Errorf("%w: encoder has no classes", ErrArtifactSchema)
	}

	var imp imputerArtifact
	if err := l.loadJSON(ctx, imputerPath, &imp); err != nil {
		return nil, err
	}
	if imp.SchemaVersion != artifactSchemaVersion {
		return nil, fmt.Errorf("%w: imputer schema version %d, want %d", ErrArtifactSchema, imp.SchemaVersion, artifactSchemaVersion)
	}
	if imp.Strategy != "mean" {
		return nil, fmt.Errorf("%w: imputer strategy %q, want mean", ErrArtifactSchema, imp.Strategy)
	}
	if !equalStrings(imp.Columns, ImputedColumns) || len(imp.Means) != len(imp.Columns) {
		return nil, fmt.Errorf("%w: imputer columns %v, want %v", ErrArtifactSchema, imp.Columns, ImputedColumns)
	}
	means := make(map[string]float64, len(imp.Columns))
	for i, col := range imp.Columns {
		means[col] = imp.Means[i]
	}

	log.Printf("Loaded preprocessor artifacts: %d categories, %d imputed columns", len(enc.Classes), len(imp.Columns))
	return &Preprocessor{
		Encoder: NewCategoryEncoder(enc.Classes),
		Imputer: &NumericImputer{Means: means},
	}, nil
}

// LoadModel loads and validates the persisted regression model against
// ModelFeatureColumns.
func (l *ArtifactLoader) LoadModel(ctx context.Context, path string) (*RegressionModel, error) {
	var art modelArtifact
	if err := l.loadJSON(ctx, path, &art); err != nil {
		return nil, err
	}
	if art.SchemaVersion != artifactSchemaVersion {
		return nil, fmt.Errorf("%w: model schema version %d, want %d", ErrArtifactSchema, art.SchemaVersion, artifactSchemaVersion)
	}
	if !equalStrings(art.FeatureNames, ModelFeatureColumns) {
		return nil, fmt.Errorf("%w: model features %v, want %v", ErrArtifactSchema, art.FeatureNames, ModelFeatureColumns)
	}
	if len(art.Coefficients) != len(art.FeatureNames) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrArtifactSchema, len(art.Coefficients), len(art.FeatureNames))
	}
	log.Printf("Loaded rating model: %d features", len(art.FeatureNames))
	return &art.RegressionModel, nil
}

// LoadFrequencyDict loads the speller's word-frequency dictionary.
func (l *ArtifactLoader) LoadFrequencyDict(ctx context.Context, path string) (map[string]int64, error) {
	data, err := l.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	freq, err := ParseFrequencyDict(data)
	if err != nil {
		return nil, fmt.Errorf("parsing frequency dictionary %s: %w", path, err)
	}
	log.Printf("Loaded frequency dictionary: %d words", len(freq))
	return freq, nil
}

func (l *ArtifactLoader) loadJSON(ctx context.Context, path string, v interface{}) error {
	data, err := l.fetch(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactSchema, path, err)
	}
	return nil
}

// SaveArtifacts persists the fitted encoder and imputer as versioned
// JSON blobs, the counterpart of LoadPreprocessor. Local paths only;
// publishing to S3 is a deployment step, not this process's job.
func (p *Preprocessor) SaveArtifacts(encoderPath, imputerPath string) error {
	enc := encoderArtifact{
		SchemaVersion: artifactSchemaVersion,
		Column:        "RecipeCategory",
		Classes:       p.Encoder.Classes,
	}
	imp := imputerArtifact{
		SchemaVersion: artifactSchemaVersion,
		Strategy:      "mean",
		Columns:       ImputedColumns,
	}
	for _, col := range ImputedColumns {
		imp.Means = append(imp.Means, p.Imputer.Means[col])
	}
	if err := writeJSON(encoderPath, enc); err != nil {
		return err
	}
	return writeJSON(imputerPath, imp)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
