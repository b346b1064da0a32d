// FILE: lixenwraith/bitflags/example/main.go
package main

//go:generate go run github.com/lixenwraith/bitflags/cmd/bitflagsgen generate -f options.toml -o options_bitflags.go

import (
	"errors"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bitflags"
)

// LocaleConfig is the loader configuration of a localization bundle.
// Asset options are a flag set, written as "CleanUnused | FileSystem" in TOML.
type LocaleConfig struct {
	SupportedLocales []string `toml:"supported_locales"`
	DefaultLocale    string   `toml:"default_locale"`
	Assets           struct {
		Source  string       `toml:"source"`
		Files   []string     `toml:"files"`
		Options AssetOptions `toml:"options"`
	} `toml:"assets"`
}

const configFilePath = "locale.toml"

func main() {
	// =========================================================================
	// PART 1: BUILD VALUES FROM DECLARED FLAGS
	// =========================================================================
	log.Println("---")
	log.Println("PART 1: Combining declared flags...")

	opts := AssetOptionsFileSystem.Union(AssetOptionsWatch)
	log.Printf("   union:        %v (bits %08b)", opts, opts)
	log.Printf("   complement:   %v", opts.Complement())
	log.Printf("   contains FS:  %t", opts.Contains(AssetOptionsFileSystem))
	log.Printf("   all:          %v", AllAssetOptions())

	if _, err := AssetOptionsFromBits(0x80); errors.Is(err, bitflags.ErrUnrecognizedBits) {
		log.Printf("   0x80 rejected: %v", err)
	}
	log.Printf("   0x81 truncated: %v", AssetOptionsFromBitsTruncate(0x81))

	// =========================================================================
	// PART 2: EMBED A FLAG SET IN A TOML CONFIGURATION
	// =========================================================================
	log.Println("---")
	log.Println("PART 2: Writing and reading a configuration file...")

	defer func() {
		os.Remove(configFilePath)
		log.Printf("Removed %s.", configFilePath)
	}()

	initial := LocaleConfig{
		SupportedLocales: []string{"en", "fr"},
		DefaultLocale:    "en",
	}
	initial.Assets.Source = "app://res/lang"
	initial.Assets.Files = []string{"_"}
	initial.Assets.Options = AssetOptionsDefault

	if err := writeConfig(initial); err != nil {
		log.Fatalf("Failed to write configuration: %v", err)
	}

	var loaded LocaleConfig
	if _, err := toml.DecodeFile(configFilePath, &loaded); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	log.Printf("   options from file: %v", loaded.Assets.Options)

	// =========================================================================
	// PART 3: DECODE FROM A GENERIC MAP (mapstructure hook)
	// =========================================================================
	log.Println("---")
	log.Println("PART 3: Decoding loosely typed input...")

	raw := map[string]any{
		"default_locale": "fr",
		"assets": map[string]any{
			"source":  "https://cdn.example.com/lang",
			"files":   "_,errors",
			"options": []any{"HTTP", "CleanUnused"},
		},
	}
	var decoded LocaleConfig
	if err := bitflags.Decode(raw, &decoded, "toml"); err != nil {
		log.Fatalf("Failed to decode: %v", err)
	}
	log.Printf("   decoded options: %v", decoded.Assets.Options)

	for name := range decoded.Assets.Options.Iter() {
		log.Printf("   - %s", name)
	}
}

func writeConfig(cfg LocaleConfig) error {
	f, err := os.Create(configFilePath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
