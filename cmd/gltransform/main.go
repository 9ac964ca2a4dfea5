package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/akmonengine/gltransform"
	"github.com/akmonengine/gltransform/recipe"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gltransform: ")

	path := flag.String("recipe", "", "YAML recipe to build")
	format := flag.String("format", "text", "output format: text, array or hex")
	watch := flag.Bool("watch", false, "rebuild and print whenever the recipe changes")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !validFormat(*format) {
		log.Fatalf("unknown format %q", *format)
	}

	if err := printRecipe(os.Stdout, *path, *format); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		log.Print(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watchRecipe(ctx, os.Stdout, *path, *format); err != nil {
		log.Fatal(err)
	}
}

func validFormat(format string) bool {
	switch format {
	case "text", "array", "hex":
		return true
	}
	return false
}

func printRecipe(w io.Writer, path, format string) error {
	r, err := recipe.Load(path)
	if err != nil {
		return err
	}
	t, err := r.Build()
	if err != nil {
		return err
	}

	if r.Name != "" {
		fmt.Fprintf(w, "# %s\n", r.Name)
	}
	_, err = io.WriteString(w, render(t, format))
	return err
}

func render(t gltransform.Transform, format string) string {
	switch format {
	case "array":
		raw := t.Array()
		parts := make([]string, len(raw))
		for i, v := range raw {
			parts[i] = fmt.Sprint(v)
		}
		return "[" + strings.Join(parts, ", ") + "]\n"
	case "hex":
		return hex.EncodeToString(t.Bytes()) + "\n"
	default:
		return t.String()
	}
}

// watchRecipe watches the directory of path, since editors often replace files on save.
func watchRecipe(ctx context.Context, w io.Writer, path, format string) error {
	watcher, err := recipe.NewWatcher(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(name) != target {
				continue
			}
			if err := printRecipe(w, path, format); err != nil {
				log.Print(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Print(err)
		}
	}
}
