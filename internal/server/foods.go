// internal/server/foods.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type pagedParams struct {
	Page    int `json:"page,omitempty" description:"Page number (default 1)"`
	PerPage int `json:"per_page,omitempty" description:"Results per page (default 50)"`
}

type foodsGetParams struct {
	FoodID string `json:"food_id" description:"Food ID"`
}

type foodsCreateParams struct {
	Name        string `json:"name" description:"Food name"`
	Description string `json:"description,omitempty" description:"Food description"`
	LabelID     string `json:"label_id,omitempty" description:"Label ID to attach"`
}

type foodsUpdateParams struct {
	FoodID      string  `json:"food_id" description:"Food ID"`
	Name        *string `json:"name,omitempty" description:"New food name"`
	Description *string `json:"description,omitempty" description:"New description"`
	LabelID     *string `json:"label_id,omitempty" description:"New label ID"`
}

type foodsMergeParams struct {
	FromFoodID string `json:"from_food_id" description:"Food ID to merge away"`
	ToFoodID   string `json:"to_food_id" description:"Food ID to keep"`
}

type unitsGetParams struct {
	UnitID string `json:"unit_id" description:"Unit ID"`
}

type unitsCreateParams struct {
	Name         string `json:"name" description:"Unit name"`
	Description  string `json:"description,omitempty" description:"Unit description"`
	Abbreviation string `json:"abbreviation,omitempty" description:"Unit abbreviation"`
}

type unitsUpdateParams struct {
	UnitID       string  `json:"unit_id" description:"Unit ID"`
	Name         *string `json:"name,omitempty" description:"New unit name"`
	Description  *string `json:"description,omitempty" description:"New description"`
	Abbreviation *string `json:"abbreviation,omitempty" description:"New abbreviation"`
}

type unitsMergeParams struct {
	FromUnitID string `json:"from_unit_id" description:"Unit ID to merge away"`
	ToUnitID   string `json:"to_unit_id" description:"Unit ID to keep"`
}

func foodToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_foods_list": tool(func(ctx context.Context, p pagedParams) string {
			return tools.FoodsList(ctx, p.Page, p.PerPage)
		}),
		"mealie_foods_get": tool(func(ctx context.Context, p foodsGetParams) string {
			return tools.FoodsGet(ctx, p.FoodID)
		}),
		"mealie_foods_create": tool(func(ctx context.Context, p foodsCreateParams) string {
			return tools.FoodsCreate(ctx, p.Name, p.Description, p.LabelID)
		}),
		"mealie_foods_update": tool(func(ctx context.Context, p foodsUpdateParams) string {
			return tools.FoodsUpdate(ctx, p.FoodID, p.Name, p.Description, p.LabelID)
		}),
		"mealie_foods_delete": tool(func(ctx context.Context, p foodsGetParams) string {
			return tools.FoodsDelete(ctx, p.FoodID)
		}),
		"mealie_foods_merge": tool(func(ctx context.Context, p foodsMergeParams) string {
			return tools.FoodsMerge(ctx, p.FromFoodID, p.ToFoodID)
		}),
		"mealie_units_list": tool(func(ctx context.Context, p pagedParams) string {
			return tools.UnitsList(ctx, p.Page, p.PerPage)
		}),
		"mealie_units_get": tool(func(ctx context.Context, p unitsGetParams) string {
			return tools.UnitsGet(ctx, p.UnitID)
		}),
		"mealie_units_create": tool(func(ctx context.Context, p unitsCreateParams) string {
			return tools.UnitsCreate(ctx, p.Name, p.Description, p.Abbreviation)
		}),
		"mealie_units_update": tool(func(ctx context.Context, p unitsUpdateParams) string {
			return tools.UnitsUpdate(ctx, p.UnitID, p.Name, p.Description, p.Abbreviation)
		}),
		"mealie_units_delete": tool(func(ctx context.Context, p unitsGetParams) string {
			return tools.UnitsDelete(ctx, p.UnitID)
		}),
		"mealie_units_merge": tool(func(ctx context.Context, p unitsMergeParams) string {
			return tools.UnitsMerge(ctx, p.FromUnitID, p.ToUnitID)
		}),
	}
}
