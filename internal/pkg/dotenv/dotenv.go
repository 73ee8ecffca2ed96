package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var exportDirFlag string
	flag.StringVar(&exportDirFlag, "export-dir", "", "Export directory (overrides EXPORT_DIR environment variable)")
	flag.Parse()

	if exportDirFlag != "" {
		err := os.Setenv("EXPORT_DIR", exportDirFlag)
		if err != nil {
			return fmt.Errorf("failed to set EXPORT_DIR environment variable: %w", err)
		}
	}
	return nil
}
