package handlers

import (
	"dairydelight/internal/catalog"
	"dairydelight/internal/kv"
	"dairydelight/internal/services"
)

type Deps struct {
	ShopHandler  *ShopHandler
	CartHandler  *CartHandler
	AdminHandler *AdminHandler
}

func NewDeps(store *catalog.Store, snapshots kv.Store) *Deps {
	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService(snapshots)

	return &Deps{
		ShopHandler:  &ShopHandler{Catalog: catalogSvc},
		CartHandler:  &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		AdminHandler: &AdminHandler{Catalog: catalogSvc},
	}
}
