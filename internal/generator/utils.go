package generator

import (
	"io"
	"os"
	"text/template"

	"github.com/site2c/site2c/internal/templates"
)

// renderFragment loads a template by name, parses it with the shared
// funcmap and executes it into w.
func renderFragment(w io.Writer, tmplName string, data interface{}) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	t, err := template.New(tmplName).Funcs(GetFuncMap()).Parse(tmplContent)
	if err != nil {
		return err
	}

	return t.Execute(w, data)
}

// renderFile executes a template into a freshly created file.
func renderFile(tmplName string, outputPath string, data interface{}) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return renderFragment(f, tmplName, data)
}
