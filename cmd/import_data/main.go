// import_data carga un respaldo del documento (app-data.json) en el almacenamiento configurado
// por STORE_DRIVER. Acepta archivos exportados en Windows-1254 o ISO-8859-9 (equipos con
// configuración regional turca antigua) además de UTF-8.
//
// Uso: go run ./cmd/import_data [-charset utf-8|windows-1254|iso-8859-9] ruta/app-data.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/store"
	"github.com/jhoicas/fiyatvizyon-api/pkg/config"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

func main() {
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8, windows-1254, iso-8859-9")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_data [-charset ...] ruta/app-data.json")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("import")

	doc, err := readDocument(flag.Arg(0), *charset)
	if err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("leer respaldo")
	}

	ctx := context.Background()
	repo, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	if err := repo.Save(ctx, doc); err != nil {
		log.Error().Err(err).Msg("guardar documento")
		return
	}
	log.Info().
		Str("store", cfg.Store.Driver).
		Int("products", len(doc.Products)).
		Int("ingredients", len(doc.Ingredients)).
		Int("categories", len(doc.Categories)).
		Int("margins", len(doc.Margins)).
		Msg("documento importado")
}

func readDocument(path, charset string) (*entity.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decoderFor(f, charset)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return entity.ParseDocument(data)
}

func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1254", "cp1254":
		return transform.NewReader(r, charmap.Windows1254.NewDecoder()), nil
	case "iso-8859-9", "latin5":
		return transform.NewReader(r, charmap.ISO8859_9.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset %q no soportado", charset)
	}
}
