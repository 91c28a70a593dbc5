package liteconf_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/liteconf"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "liteconf")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")
	body := `{"app":{"debug":true,"port":8080},"database":{"host":"localhost"}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		panic(err)
	}

	// Environment values override file values; deployment tooling would
	// export these instead of passing them explicitly.
	cfg, err := liteconf.Load(path, liteconf.WithEnviron(map[string]string{
		"APP_PORT":      "9000",
		"DATABASE_HOST": "db.example.com",
	}))
	if err != nil {
		panic(err)
	}

	fmt.Println(cfg.Int("app.port", 0))
	fmt.Println(cfg.Bool("app.debug", false))
	fmt.Println(cfg.String("database.host", ""))
	// Output:
	// 9000
	// true
	// db.example.com
}
