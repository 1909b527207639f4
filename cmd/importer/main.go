package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"podshop/internal/config"
	"podshop/internal/db"
	"podshop/internal/importer"
	"podshop/internal/repository/product"
	"podshop/internal/repository/zone"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to zone stock CSV (columns: zone,product,stock)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	zoneRepo := zone.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, zoneRepo, product.NewPostgres(pool, logger), zoneRepo)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed after %d rows: %v", count, err)
	}

	fmt.Printf("Imported %d stock entries in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
