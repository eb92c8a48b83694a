// import_beerxml genera un script SQL de siembra a partir de un archivo
// BeerXML 1.0 exportado por otro software cervecero (BeerSmith, Brewfather).
//
// Uso: go run ./cmd/import_beerxml <ruta/receta.xml>
// Escribe: internal/infrastructure/postgres/migrations/900_import_<receta>.sql
//
// Los ingredientes nuevos se insertan con costo unitario 1.00 (BeerXML no
// trae costos); ajustar después vía PATCH /api/ingredients/{id}/cost.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Volúmenes BeerXML vienen en litros; la base trabaja en barriles.
var litersPerBBL = decimal.NewFromFloat(117.348)

type beerXML struct {
	Recipes []beerRecipe `xml:"RECIPE"`
}

type beerRecipe struct {
	Name         string        `xml:"NAME"`
	BatchSize    string        `xml:"BATCH_SIZE"` // litros
	Fermentables []beerXMLItem `xml:"FERMENTABLES>FERMENTABLE"`
	Hops         []beerXMLItem `xml:"HOPS>HOP"`
	Miscs        []beerXMLItem `xml:"MISCS>MISC"`
	Yeasts       []beerXMLItem `xml:"YEASTS>YEAST"`
}

type beerXMLItem struct {
	Name   string `xml:"NAME"`
	Amount string `xml:"AMOUNT"`
	Color  string `xml:"COLOR"` // solo fermentables
	Alpha  string `xml:"ALPHA"` // solo lúpulos
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: import_beerxml <ruta/receta.xml>")
		os.Exit(1)
	}
	xmlPath := os.Args[1]
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var doc beerXML
	dec := xml.NewDecoder(f)
	// Exportadores viejos (BeerSmith 2) declaran ISO-8859-1.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&doc); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}
	if len(doc.Recipes) == 0 {
		fmt.Fprintln(os.Stderr, "El documento no contiene recetas")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	for _, rec := range doc.Recipes {
		slug := slugify(rec.Name)
		outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres",
			"migrations", "900_import_"+slug+".sql")
		out, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		writeRecipeSQL(out, rec)
		out.Close()
		fmt.Printf("Generado %s\n", outPath)
	}
}

func writeRecipeSQL(out *os.File, rec beerRecipe) {
	fmt.Fprintf(out, "-- Receta importada de BeerXML: %s\n\n", rec.Name)

	type row struct {
		name, category, detail, unit, qty string
	}
	var rows []row
	for _, it := range rec.Fermentables {
		rows = append(rows, row{it.Name, "FERMENTABLE", defaultStr(it.Color, "0"), "lb", it.Amount})
	}
	for _, it := range rec.Hops {
		rows = append(rows, row{it.Name, "HOP", defaultStr(it.Alpha, "0"), "oz", it.Amount})
	}
	for _, it := range rec.Miscs {
		rows = append(rows, row{it.Name, "OTHER", "0", "oz", it.Amount})
	}
	for _, it := range rec.Yeasts {
		rows = append(rows, row{it.Name, "OTHER", "0", "packet", defaultStr(it.Amount, "1")})
	}

	// 1. Ingredientes (costo placeholder, ajustar después)
	out.WriteString("-- 1. Ingredientes nuevos\n")
	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO ingredients (name, category, unit_cost, detail, unit, on_hand_qty)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', 1.00, %s, '%s', 0)\n",
			escapeSQL(r.name), r.category, defaultStr(r.detail, "0"), r.unit)
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}

	// 2. Receta con volumen convertido a BBL
	volumeBBL := "10"
	if liters, err := decimal.NewFromString(rec.BatchSize); err == nil && liters.GreaterThan(decimal.Zero) {
		volumeBBL = liters.Div(litersPerBBL).Round(2).String()
	}
	out.WriteString("\n-- 2. Receta\n")
	fmt.Fprintf(out, "INSERT INTO recipes (name, base_volume_bbl, base_cost)\n")
	fmt.Fprintf(out, "VALUES ('%s', %s, 0)\n", escapeSQL(rec.Name), volumeBBL)
	out.WriteString("ON CONFLICT (name) DO NOTHING;\n")

	// 3. Composición con subqueries por nombre
	out.WriteString("\n-- 3. Composición\n")
	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO recipe_items (recipe_id, ingredient_id, quantity)\n")
		fmt.Fprintf(out, "SELECT r.id, i.id, %s FROM recipes r, ingredients i\n",
			defaultStr(r.qty, "1"))
		fmt.Fprintf(out, "WHERE r.name = '%s' AND i.name = '%s'\n",
			escapeSQL(rec.Name), escapeSQL(r.name))
		out.WriteString("ON CONFLICT (recipe_id, ingredient_id) DO NOTHING;\n")
	}
}

func defaultStr(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return def
	}
	return s
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
