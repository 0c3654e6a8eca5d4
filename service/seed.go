package service

import (
	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
)

// demoContracts is the sample portfolio shown to a fresh session
var demoContracts = []model.Contract{
	{
		Subject:    "Pavimentação Asfáltica Vila Limeira",
		Contractor: "Construtora MS Ltda",
		Value:      decimal.NewFromInt(1500000),
		StartDate:  date.MustParse("2023-01-10"),
		EndDate:    date.MustParse("2024-05-15"),
		Category:   model.CategoryWorks,
		Inspector:  "João Silva",
	},
	{
		Subject:    "Fornecimento de Merenda Escolar",
		Contractor: "Alimentos S.A.",
		Value:      decimal.NewFromInt(800000),
		StartDate:  date.MustParse("2023-05-01"),
		EndDate:    date.MustParse("2026-02-28"),
		Category:   model.CategoryPurchases,
		Inspector:  "Maria Oliveira",
	},
	{
		Subject:    "Locação de Impressoras",
		Contractor: "Tech Print",
		Value:      decimal.NewFromInt(50000),
		StartDate:  date.MustParse("2022-01-01"),
		EndDate:    date.MustParse("2024-03-20"),
		Category:   model.CategoryServices,
		Inspector:  "Carlos Souza",
	},
}

// SeedDemo registers the sample portfolio into store
func SeedDemo(store *ContractStore) error {
	for _, c := range demoContracts {
		if _, err := store.Register(c); err != nil {
			return err
		}
	}
	return nil
}
