package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogURL            string // 車両カタログJSONの取得元URL
	CatalogTimeoutSeconds int    // カタログ取得のタイムアウト（秒、省略時5）

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		CatalogURL: os.Getenv("CATALOG_URL"),
		GoEnv:      os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.CatalogURL == "" {
		return Config{}, fmt.Errorf("CATALOG_URL is required")
	}

	//タイムアウトは省略可
	cfg.CatalogTimeoutSeconds = 5
	if v := os.Getenv("CATALOG_TIMEOUT_SECONDS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i <= 0 {
			return Config{}, fmt.Errorf("CATALOG_TIMEOUT_SECONDS must be a positive number")
		}
		cfg.CatalogTimeoutSeconds = i
	}

	return cfg, nil
}
