package modules

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/naming"
	"github.com/roach88/boxcar/internal/payload"
)

//go:embed all:templates
var templateFS embed.FS

// Templates exposes the embedded payloads.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return templateFS
	}
	return sub
}

var engine = sync.OnceValues(func() (*payload.Engine, error) {
	return payload.New("modules", Templates())
})

// render renders templates/<module>/<name>.tmpl for cc.
func render(cc *composer.Context, module, name string) (string, error) {
	e, err := engine()
	if err != nil {
		return "", err
	}
	capabilities := make(map[string]bool)
	for _, c := range cc.Capabilities() {
		capabilities[c] = true
	}
	out, err := e.Render(path.Join(module, name), payload.Context{
		"app_name":       cc.AppName,
		"app_module":     naming.Module(cc.AppName),
		"app_title":      naming.Title(cc.AppName),
		"app_env_prefix": naming.EnvPrefix(cc.AppName),
		"app_database":   naming.Database(cc.AppName),
		"capabilities":   capabilities,
	})
	if err != nil {
		return "", fmt.Errorf("payload %s/%s: %w", module, name, err)
	}
	return out, nil
}
