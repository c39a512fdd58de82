package cmd

import (
	"context"
	"fmt"
	"os"

	"depot-planner/core/catalog"
	"depot-planner/core/config"
	"depot-planner/core/logger"
	"depot-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and publish the item catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configured catalog and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		var client storage.Client
		if cfg.Catalog.Source == "object" {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return err
			}
		}
		src, err := catalog.NewSource(cfg.Catalog, client, cfg.Storage.Bucket)
		if err != nil {
			return err
		}

		cat, err := src.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		craftable := 0
		for _, id := range cat.IDs() {
			if item, _ := cat.Get(id); item.IsCraftable() {
				craftable++
			}
		}
		l.Info("Catalog loaded",
			zap.String("source", src.Key()),
			zap.Int("items", cat.Len()),
			zap.Int("craftable", craftable),
		)
		return nil
	},
}

var catalogPublishCmd = &cobra.Command{
	Use:   "publish <items.json>",
	Short: "Validate a catalog file and upload it to the storage bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		cat, err := catalog.FileSource{Path: args[0]}.Load(ctx)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket: %w", err)
		}
		if !exists {
			return fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}

		up, err := client.PutObject(ctx, cfg.Storage.Bucket, cfg.Catalog.Object, f, info.Size(),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return fmt.Errorf("failed to upload catalog: %w", err)
		}
		l.Info("Catalog published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", cfg.Catalog.Object),
			zap.String("etag", up.ETag),
			zap.Int("items", cat.Len()),
		)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd, catalogPublishCmd)
	RootCmd.AddCommand(catalogCmd)
}
