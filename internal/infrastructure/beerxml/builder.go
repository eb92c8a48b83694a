// Package beerxml serializa recetas al formato de intercambio BeerXML 1.0
// (http://www.beerxml.com/beerxml.htm), el estándar de facto entre software
// cervecero (BeerSmith, Brewfather, etc.).
package beerxml

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/application/usecase"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

// BeerXML expresa volúmenes en litros; los lotes internos van en barriles.
var litersPerBBL = decimal.NewFromFloat(117.348)

var _ usecase.BeerXMLBuilder = (*Builder)(nil)

// Builder construye documentos BeerXML 1.0 con etree.
type Builder struct{}

// NewBuilder crea el servicio.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build genera el []byte del documento RECIPES para una receta y su
// composición. Fermentables llevan COLOR, lúpulos ALPHA; el resto va como
// MISC.
func (b *Builder) Build(recipe *entity.Recipe, items []usecase.RecipeItemDetail) ([]byte, error) {
	if recipe == nil {
		return nil, fmt.Errorf("beerxml: receta nula")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	recipes := doc.CreateElement("RECIPES")
	rec := recipes.CreateElement("RECIPE")
	rec.CreateElement("NAME").SetText(recipe.Name)
	rec.CreateElement("VERSION").SetText("1")
	rec.CreateElement("TYPE").SetText("All Grain")
	rec.CreateElement("BATCH_SIZE").SetText(recipe.BaseVolume.Mul(litersPerBBL).StringFixed(2))

	fermentables := rec.CreateElement("FERMENTABLES")
	hops := rec.CreateElement("HOPS")
	miscs := rec.CreateElement("MISCS")

	for _, it := range items {
		ing := it.Ingredient
		switch ing.Category {
		case entity.CategoryFermentable:
			f := fermentables.CreateElement("FERMENTABLE")
			f.CreateElement("NAME").SetText(ing.Name)
			f.CreateElement("VERSION").SetText("1")
			f.CreateElement("AMOUNT").SetText(it.Quantity.String())
			f.CreateElement("COLOR").SetText(ing.Detail.String())
		case entity.CategoryHop:
			h := hops.CreateElement("HOP")
			h.CreateElement("NAME").SetText(ing.Name)
			h.CreateElement("VERSION").SetText("1")
			h.CreateElement("AMOUNT").SetText(it.Quantity.String())
			h.CreateElement("ALPHA").SetText(ing.Detail.String())
			h.CreateElement("USE").SetText("Boil")
		default:
			m := miscs.CreateElement("MISC")
			m.CreateElement("NAME").SetText(ing.Name)
			m.CreateElement("VERSION").SetText("1")
			m.CreateElement("TYPE").SetText("Other")
			m.CreateElement("USE").SetText("Boil")
			m.CreateElement("AMOUNT").SetText(it.Quantity.String())
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("beerxml: serializar documento: %w", err)
	}
	return out, nil
}
