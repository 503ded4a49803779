// A web service which enriches MusicBrainz entities with a description from
// Wikipedia and the cover art of their albums.
//
// This file is only here to make installing with go install easier. The source
// lives in the src directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ironsmile/musicsearch/src"
)

func main() {
	if err := src.Main(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "musicsearch: %s\n", err)
		os.Exit(1)
	}
}
