package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "site2c",
	Short: "A tool to embed static websites into C sources for microcontroller web servers",
	Long: `site2c walks a compiled website directory and generates a C header/source
pair that serves every file from memory on an ESP32-class device.
Supported targets are the Arduino WebServer and the ESP-IDF esp_http_server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
