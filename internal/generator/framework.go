package generator

import (
	"fmt"

	"github.com/site2c/site2c/internal/config"
)

// Framework describes one supported code-generation target. It carries the
// file names, the storage qualifier and the template fragments; the
// pipeline itself is framework-agnostic above this seam, so a new target
// is one more entry in this table plus its templates.
type Framework struct {
	Name       string
	HeaderFile string
	SourceFile string
	// StorageQualifier is appended to byte-array declarations. Arduino
	// needs PROGMEM to keep arrays in flash; ESP-IDF const arrays live
	// in flash without a qualifier.
	StorageQualifier string

	headerTmpl   string
	prologueTmpl string
	assetTmpl    string
	registerTmpl string
}

var frameworks = map[string]*Framework{
	config.TargetArduino: {
		Name:             config.TargetArduino,
		HeaderFile:       "website.h",
		SourceFile:       "website.cpp",
		StorageQualifier: " PROGMEM",
		headerTmpl:       "header_arduino.tmpl",
		prologueTmpl:     "prologue_arduino.tmpl",
		assetTmpl:        "asset_arduino.tmpl",
		registerTmpl:     "register_arduino.tmpl",
	},
	config.TargetEspidf: {
		Name:             config.TargetEspidf,
		HeaderFile:       "website.h",
		SourceFile:       "website.c",
		StorageQualifier: "",
		headerTmpl:       "header_espidf.tmpl",
		prologueTmpl:     "prologue_espidf.tmpl",
		assetTmpl:        "asset_espidf.tmpl",
		registerTmpl:     "register_espidf.tmpl",
	},
}

// Lookup resolves a target name from the configuration to its framework
// variant.
func Lookup(name string) (*Framework, error) {
	fw, ok := frameworks[name]
	if !ok {
		return nil, fmt.Errorf("unsupported target framework: %s", name)
	}
	return fw, nil
}
