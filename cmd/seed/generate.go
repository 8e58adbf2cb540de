package main

import (
	"fmt"
	"math/rand"
	"time"

	"projarapi/internal/projar"
)

var (
	kinds    = []string{"Mapa", "Planta", "Carta náutica", "Fotografia aérea", "Perfil"}
	places   = []string{"São Paulo", "Rio Grande", "Paraná", "Guanabara", "Ceará", "Maranhão", "Espírito Santo", "Goiás"}
	features = []string{"hidrográfico", "rodoviário", "geológico", "cadastral", "topográfico", "da costa", "do porto"}
	scales   = []string{"1:5.000", "1:10.000", "1:25.000", "1:50.000", "1:100.000"}
)

// generateDataset builds n random records over a fixed set of entities.
func generateDataset(n int, rng *rand.Rand) projar.Dataset {
	ds := projar.Dataset{
		Sectors: []projar.Sector{
			{ID: 1, Name: "Cartografia"}, {ID: 2, Name: "Engenharia"}, {ID: 3, Name: "Documentação"},
		},
		Locations: []projar.Location{
			{ID: 1, Name: "Arquivo Central"}, {ID: 2, Name: "Mapoteca"}, {ID: 3, Name: "Depósito Anexo"},
		},
		Subjects: []projar.Subject{
			{ID: 1, Name: "Hidrografia"}, {ID: 2, Name: "Costa litorânea"}, {ID: 3, Name: "Navegação"},
			{ID: 4, Name: "Saneamento"}, {ID: 5, Name: "Estradas de rodagem"}, {ID: 6, Name: "Geologia"},
		},
		Executors: []projar.Executor{
			{ID: 1, Name: "DNOS", Type: "federal"},
			{ID: 2, Name: "Prefeitura Municipal", Type: "municipal"},
			{ID: 3, Name: "Comissão Geográfica", Type: "estadual"},
		},
		Areas: []projar.GeographicArea{
			{ID: 1, Name: "Norte"}, {ID: 2, Name: "Nordeste"}, {ID: 3, Name: "Sudeste"}, {ID: 4, Name: "Sul"},
		},
		Authors: []projar.Author{
			{ID: 1, Name: "Andrade", Role: projar.RolePrimary},
			{ID: 2, Name: "Silva", Role: projar.RoleSecondaryEvent},
			{ID: 3, Name: "Instituto Geográfico", Role: projar.RoleSecondaryCorporate},
			{ID: 4, Name: "Moraes", Role: projar.RolePrimary},
		},
	}

	base := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		kind := kinds[rng.Intn(len(kinds))]
		rec := projar.Record{
			ID:         i,
			CallNumber: fmt.Sprintf("%s-%05d", callPrefix(kind), i),
			Title: fmt.Sprintf("%s %s de %s",
				kind, features[rng.Intn(len(features))], places[rng.Intn(len(places))]),
			Content: kind,
			Scale:   scales[rng.Intn(len(scales))],
		}
		if rng.Intn(10) > 0 {
			d := base.AddDate(0, 0, rng.Intn(365*120))
			rec.Date = &d
		}
		if rng.Intn(5) > 0 {
			id := ds.Sectors[rng.Intn(len(ds.Sectors))].ID
			rec.SectorID = &id
		}
		if rng.Intn(5) > 0 {
			id := ds.Locations[rng.Intn(len(ds.Locations))].ID
			rec.LocationID = &id
		}

		ds.Records = append(ds.Records, projar.DatasetRecord{
			Record:    rec,
			Subjects:  pick(rng, len(ds.Subjects), 3),
			Executors: pick(rng, len(ds.Executors), 2),
			Areas:     pick(rng, len(ds.Areas), 2),
			Authors:   pick(rng, len(ds.Authors), 2),
		})
	}
	return ds
}

func callPrefix(kind string) string {
	switch kind {
	case "Mapa":
		return "MP"
	case "Planta":
		return "PL"
	case "Carta náutica":
		return "CT"
	default:
		return "DV"
	}
}

// pick returns up to limit distinct ids in [1, n].
func pick(rng *rand.Rand, n, limit int) []int {
	k := rng.Intn(limit + 1)
	perm := rng.Perm(n)[:k]
	ids := make([]int, k)
	for i, p := range perm {
		ids[i] = p + 1
	}
	return ids
}
