package main

import (
	"flag"
	"log"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/service"
)

// Fits the category encoder and numeric imputer over the full ingested
// catalog and persists them as the versioned artifacts the API loads
// at startup. Run once after (re)seeding; the rating model itself is
// trained offline and shipped separately.
func main() {
	encoderPath := flag.String("encoder", "artifacts/encoder.json", "output path for the category encoder")
	imputerPath := flag.String("imputer", "artifacts/imputer.json", "output path for the numeric imputer")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	var catalog []model.Recipe
	if err := db.Find(&catalog).Error; err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if len(catalog) == 0 {
		log.Fatal("Catalog is empty; seed recipes first")
	}
	refs := make([]*model.Recipe, len(catalog))
	for i := range catalog {
		refs[i] = &catalog[i]
	}

	pre := service.FitPreprocessor(refs)
	if err := pre.SaveArtifacts(*encoderPath, *imputerPath); err != nil {
		log.Fatalf("Failed to save artifacts: %v", err)
	}
	log.Printf("Fitted %d categories and %d imputed columns over %d recipes",
		len(pre.Encoder.Classes), len(service.ImputedColumns), len(refs))
}
