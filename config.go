// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlstore/catalog"
)

const configFileName = ".avlstore.yaml"

type ServerConfig struct {
	Listen      string   `yaml:"listen"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type CatalogConfig struct {
	SeedSample     bool          `yaml:"seed_sample"`
	RenderCacheTTL time.Duration `yaml:"render_cache_ttl"`
}

type RenderConfig struct {
	NameWidth int    `yaml:"name_width"`
	Format    string `yaml:"format"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Render  RenderConfig  `yaml:"render"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:      ":3000",
			CORSOrigins: []string{"http://localhost:5173", "http://localhost:5174", "http://localhost:3000"},
		},
		Catalog: CatalogConfig{
			SeedSample:     true,
			RenderCacheTTL: catalog.DefaultRenderCacheExpiration,
		},
		Render: RenderConfig{
			NameWidth: 20,
			Format:    string(catalog.FormatMermaid),
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlstore.yaml. A missing or unreadable file yields the
// defaults, as does any field left out of the file.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if _, err := catalog.ParseFormat(config.Render.Format); err != nil {
		return defaultConfig(), fmt.Errorf("invalid render.format in %s: %w", configPath, err)
	}
	return config, nil
}

func writeConfig(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// newCatalog builds the single catalog instance the commands share.
func newCatalog(config *Config, opts ...catalog.Option) *catalog.Catalog {
	opts = append([]catalog.Option{
		catalog.WithNameWidth(config.Render.NameWidth),
		catalog.WithRenderTTL(config.Catalog.RenderCacheTTL),
	}, opts...)
	return catalog.New(opts...)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  %v. Using defaults.\n\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")
		if err := writeConfig(configPath, defaultConfig()); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		fmt.Printf("❌ Failed to display configuration: %v\n", err)
		return
	}
	fmt.Println(styles.Title.Render("🔧 avlstore settings"))
	fmt.Println(string(data))
}
