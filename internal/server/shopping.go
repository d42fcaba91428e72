// internal/server/shopping.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type shoppingListParams struct {
	ListID string `json:"list_id" description:"Shopping list ID"`
}

type shoppingListsCreateParams struct {
	Name string `json:"name" description:"Name for the new shopping list"`
}

type shoppingItemsAddParams struct {
	ListID   string   `json:"list_id" description:"Shopping list ID"`
	Note     string   `json:"note,omitempty" description:"Free-text item note"`
	Quantity *float64 `json:"quantity,omitempty" description:"Quantity of the item"`
	UnitID   string   `json:"unit_id,omitempty" description:"Unit ID"`
	FoodID   string   `json:"food_id,omitempty" description:"Food ID"`
	Display  string   `json:"display,omitempty" description:"Display text override"`
}

type shoppingItemsAddBulkParams struct {
	ListID string   `json:"list_id" description:"Shopping list ID"`
	Items  []string `json:"items" description:"Item notes to add"`
}

type shoppingItemsCheckParams struct {
	ItemID  string `json:"item_id" description:"Shopping list item ID"`
	Checked bool   `json:"checked" description:"Checked state to set"`
}

type shoppingItemsDeleteParams struct {
	ItemID string `json:"item_id" description:"Shopping list item ID"`
}

type shoppingAddRecipeParams struct {
	ListID   string  `json:"list_id" description:"Shopping list ID"`
	RecipeID string  `json:"recipe_id" description:"Recipe ID whose ingredients to add"`
	Scale    float64 `json:"scale,omitempty" description:"Recipe scale factor (default 1.0)"`
}

type shoppingRemoveRecipeParams struct {
	ListID   string `json:"list_id" description:"Shopping list ID"`
	RecipeID string `json:"recipe_id" description:"Recipe ID whose ingredients to remove"`
}

type shoppingGenerateParams struct {
	StartDate string `json:"start_date,omitempty" description:"Start date YYYY-MM-DD (defaults to today)"`
	EndDate   string `json:"end_date,omitempty" description:"End date YYYY-MM-DD (defaults to start plus 6 days)"`
	ListName  string `json:"list_name,omitempty" description:"Name for the generated list"`
}

func shoppingToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_shopping_lists_list": tool(func(ctx context.Context, _ pingParams) string {
			return tools.ShoppingListsList(ctx)
		}),
		"mealie_shopping_lists_get": tool(func(ctx context.Context, p shoppingListParams) string {
			return tools.ShoppingListsGet(ctx, p.ListID)
		}),
		"mealie_shopping_lists_create": tool(func(ctx context.Context, p shoppingListsCreateParams) string {
			return tools.ShoppingListsCreate(ctx, p.Name)
		}),
		"mealie_shopping_lists_delete": tool(func(ctx context.Context, p shoppingListParams) string {
			return tools.ShoppingListsDelete(ctx, p.ListID)
		}),
		"mealie_shopping_items_add": tool(func(ctx context.Context, p shoppingItemsAddParams) string {
			return tools.ShoppingItemsAdd(ctx, p.ListID, p.Note, p.Quantity, p.UnitID, p.FoodID, p.Display)
		}),
		"mealie_shopping_items_add_bulk": tool(func(ctx context.Context, p shoppingItemsAddBulkParams) string {
			return tools.ShoppingItemsAddBulk(ctx, p.ListID, p.Items)
		}),
		"mealie_shopping_items_check": tool(func(ctx context.Context, p shoppingItemsCheckParams) string {
			return tools.ShoppingItemsCheck(ctx, p.ItemID, p.Checked)
		}),
		"mealie_shopping_items_delete": tool(func(ctx context.Context, p shoppingItemsDeleteParams) string {
			return tools.ShoppingItemsDelete(ctx, p.ItemID)
		}),
		"mealie_shopping_add_recipe": tool(func(ctx context.Context, p shoppingAddRecipeParams) string {
			return tools.ShoppingItemsAddRecipe(ctx, p.ListID, p.RecipeID, p.Scale)
		}),
		"mealie_shopping_generate_from_mealplan": tool(func(ctx context.Context, p shoppingGenerateParams) string {
			return tools.ShoppingGenerateFromMealplan(ctx, p.StartDate, p.EndDate, p.ListName)
		}),
		"mealie_shopping_clear_checked": tool(func(ctx context.Context, p shoppingListParams) string {
			return tools.ShoppingListsClearChecked(ctx, p.ListID)
		}),
		"mealie_shopping_delete_recipe_from_list": tool(func(ctx context.Context, p shoppingRemoveRecipeParams) string {
			return tools.ShoppingItemsRemoveRecipe(ctx, p.ListID, p.RecipeID)
		}),
	}
}
