package cmd

import (
	"github.com/go-imsto/imresize/albums"
	"github.com/go-imsto/imresize/config"
	"github.com/go-imsto/imresize/utils"
)

func runResize(cfg config.Config) int {
	logger().Debugw("config", "run", cfg.String())
	if cfg.DryRun {
		logger().Infof("DRY RUN MODE - No files will be modified")
		if !utils.IsDir(cfg.AlbumsDir) {
			logger().Errorf("Albums directory not found: %s", cfg.AlbumsDir)
			return exitOK
		}
		if _, err := albums.DryRun(cfg.AlbumsDir); err != nil {
			logger().Errorf("Cannot read albums directory %s: %s", cfg.AlbumsDir, err)
			return exitFail
		}
		return exitOK
	}

	logger().Infof("Starting image resize process:")
	logger().Infof("  Albums directory: %s", cfg.AlbumsDir)
	logger().Infof("  Max width: %dpx", cfg.MaxWidth)
	logger().Infof("  JPEG quality: %d%%", cfg.Quality)
	logger().Infof("  Create backups: %v", cfg.Backup)

	if !utils.IsDir(cfg.AlbumsDir) {
		logger().Errorf("Albums directory not found: %s", cfg.AlbumsDir)
		return exitOK
	}

	p, err := albums.NewProcessor(
		albums.WithMaxWidth(cfg.MaxWidth),
		albums.WithQuality(cfg.Quality),
		albums.WithBackup(cfg.Backup),
	)
	if err != nil {
		logger().Errorf("%s", err)
		return exitFail
	}

	st, err := albums.Walk(cfg.AlbumsDir, p.Process)
	logger().Debugw("walk done", "stats", st.String())
	logger().Infof("Processing complete:")
	logger().Infof("  Processed: %d images", st.Processed)
	logger().Infof("  Skipped: %d images", st.Skipped)
	logger().Infof("  Errors: %d images", st.Errors)
	if err != nil {
		logger().Errorf("Cannot read albums directory %s: %s", cfg.AlbumsDir, err)
		return exitFail
	}
	return exitOK
}
