package i18n

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	Entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.Entries[key]; ok {
		// \x02 is ASCII code for hex 02, which is STX (start of text)
		return "\x02" + value, true
	}
	return "", false
}

// NewCatalogFromFolder builds a catalog with one dictionary per <lang>.yml file found in dir
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, err
	}
	translations := map[string]catalog.Dictionary{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".yml" {
			continue
		}
		yamlFile, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, err
		}
		dict, err := ParseDict(yamlFile)
		if err != nil {
			return nil, err
		}
		translations[strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))] = dict
	}
	return catalog.NewFromMap(translations, catalog.Fallback(language.MustParse(fallbackLang)))
}

func ParseDict(file []byte) (catalog.Dictionary, error) {
	data := map[string]string{}
	if err := yaml.Unmarshal(file, &data); err != nil {
		return nil, err
	}
	return &yamlDictionary{Entries: data}, nil
}
