/*
Package version provides version information and utilities.
*/
package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of musicsearch. It is set during building.
var Version = "dev-unreleased"

// Info is the version information returned by the about endpoint.
type Info struct {
	Server    string `json:"server"`
	Version   string `json:"server_version"`
	GoVersion string `json:"go_version"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Server:    "musicsearch",
		Version:   Version,
		GoVersion: runtime.Version(),
	}
}

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "musicsearch %s\n", Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}

// PrintJSON writes the version information in out as JSON.
func PrintJSON(out io.Writer) error {
	return json.NewEncoder(out).Encode(Get())
}
