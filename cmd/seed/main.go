package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"projarapi/internal/config"
	"projarapi/internal/projar"
	"projarapi/internal/store"
)

func main() {
	var (
		file     = flag.String("file", "db/seed/sample.yaml", "YAML dataset to load")
		generate = flag.Int("generate", 0, "Generate this many random records instead of reading -file")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed for -generate")
	)
	flag.Parse()

	cfg, err := config.Load(config.GetEnv())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var ds projar.Dataset
	if *generate > 0 {
		log.Printf("Generating %d records...", *generate)
		ds = generateDataset(*generate, rand.New(rand.NewSource(*seed)))
	} else {
		ds, err = readDataset(*file)
		if err != nil {
			log.Fatalf("Failed to read dataset: %v", err)
		}
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Database, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer st.Close()

	log.Printf("Loading %d records into %s...", len(ds.Records), st.Driver())
	if err := st.Load(ctx, ds); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	total, err := st.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count records: %v", err)
	}
	log.Printf("Catalog now holds %d records", total)
}

func readDataset(path string) (projar.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return projar.Dataset{}, err
	}
	var ds projar.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return projar.Dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}
