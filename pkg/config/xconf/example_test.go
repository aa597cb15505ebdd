package xconf_test

import (
	"fmt"

	"github.com/omeyang/xpal/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte("log:\n  level: debug\n")
	c, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	settings := struct {
		Log struct {
			Level  string `koanf:"level"`
			Format string `koanf:"format"`
		} `koanf:"log"`
	}{}
	settings.Log.Format = "text"

	if err := c.Unmarshal("", &settings); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(settings.Log.Level, settings.Log.Format)
	// Output: debug text
}
