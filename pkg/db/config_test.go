package db

import (
	"testing"
)

func TestDBConfigFromYamlObj(t *testing.T) {
	t.Run("with credentials", func(t *testing.T) {
		conf := DBConfigFromYamlObj(DBConfigYaml{
			ConnectionStr:    "localhost:27017",
			Username:         "u",
			Password:         "p",
			ConnectionPrefix: "",
			Timeout:          30,
			MaxPoolSize:      8,
		})
		if conf.URI != "mongodb://u:p@localhost:27017" {
			t.Errorf("unexpected URI: %s", conf.URI)
		}
		if conf.MaxPoolSize != 8 {
			t.Errorf("unexpected pool size: %d", conf.MaxPoolSize)
		}
	})

	t.Run("without credentials", func(t *testing.T) {
		conf := DBConfigFromYamlObj(DBConfigYaml{
			ConnectionStr:    "cluster0.example.net",
			ConnectionPrefix: "+srv",
		})
		if conf.URI != "mongodb+srv://cluster0.example.net" {
			t.Errorf("unexpected URI: %s", conf.URI)
		}
	})
}
