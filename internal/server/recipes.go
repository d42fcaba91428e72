// internal/server/recipes.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type pingParams struct{}

func pingToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"ping": tool(func(ctx context.Context, _ pingParams) string {
			return tools.Ping(ctx)
		}),
	}
}

type recipesSearchParams struct {
	Query      string   `json:"query" description:"Search text to match against recipe names and descriptions"`
	Tags       []string `json:"tags,omitempty" description:"Tag names to filter by"`
	Categories []string `json:"categories,omitempty" description:"Category names to filter by"`
	Limit      int      `json:"limit,omitempty" description:"Maximum number of results (default 10)"`
}

type recipesGetParams struct {
	Slug string `json:"slug" description:"Recipe slug or ID"`
}

type recipesListParams struct {
	Page    int `json:"page,omitempty" description:"Page number (default 1)"`
	PerPage int `json:"per_page,omitempty" description:"Results per page (default 50)"`
}

type recipesCreateParams struct {
	Name         string   `json:"name" description:"Recipe name"`
	Description  string   `json:"description,omitempty" description:"Recipe description"`
	RecipeYield  string   `json:"recipe_yield,omitempty" description:"Yield, e.g. '4 servings'"`
	TotalTime    string   `json:"total_time,omitempty" description:"Total time, e.g. '1 hour'"`
	PrepTime     string   `json:"prep_time,omitempty" description:"Preparation time"`
	CookTime     string   `json:"cook_time,omitempty" description:"Cooking time"`
	Ingredients  []string `json:"ingredients,omitempty" description:"Ingredient lines as plain text"`
	Instructions []string `json:"instructions,omitempty" description:"Instruction steps as plain text"`
	Tags         []string `json:"tags,omitempty" description:"Tag names, created when missing"`
	Categories   []string `json:"categories,omitempty" description:"Category names, created when missing"`
}

type recipesCreateFromURLParams struct {
	URL         string `json:"url" description:"Public recipe URL to import"`
	IncludeTags bool   `json:"include_tags,omitempty" description:"Import tags from the source site"`
}

type recipesUpdateParams struct {
	Slug         string   `json:"slug" description:"Recipe slug or ID"`
	Name         *string  `json:"name,omitempty" description:"New recipe name"`
	Description  *string  `json:"description,omitempty" description:"New description"`
	RecipeYield  *string  `json:"recipe_yield,omitempty" description:"New yield"`
	TotalTime    *string  `json:"total_time,omitempty" description:"New total time"`
	PrepTime     *string  `json:"prep_time,omitempty" description:"New prep time"`
	CookTime     *string  `json:"cook_time,omitempty" description:"New cook time"`
	OrgURL       *string  `json:"org_url,omitempty" description:"Original source URL"`
	Image        *string  `json:"image,omitempty" description:"Image identifier"`
	Ingredients  []string `json:"ingredients,omitempty" description:"Replacement ingredient lines"`
	Instructions []string `json:"instructions,omitempty" description:"Replacement instruction steps"`
	Tags         []string `json:"tags,omitempty" description:"Tag names to add"`
	Categories   []string `json:"categories,omitempty" description:"Category names to add"`
}

type recipesStructuredIngredientsParams struct {
	Slug              string `json:"slug" description:"Recipe slug or ID"`
	ParsedIngredients []any  `json:"parsed_ingredients" description:"Parsed ingredient objects with quantity, unit, food, and note"`
}

type recipesDuplicateParams struct {
	Slug    string `json:"slug" description:"Recipe slug or ID"`
	NewName string `json:"new_name,omitempty" description:"Name for the duplicate"`
}

type recipesUpdateLastMadeParams struct {
	Slug      string `json:"slug" description:"Recipe slug or ID"`
	Timestamp string `json:"timestamp,omitempty" description:"ISO timestamp (defaults to now)"`
}

type recipesBulkURLsParams struct {
	URLs        []string `json:"urls" description:"Recipe URLs to import"`
	IncludeTags bool     `json:"include_tags,omitempty" description:"Import tags from the source sites"`
}

type recipesBulkTagParams struct {
	RecipeIDs []string `json:"recipe_ids" description:"Recipe IDs to tag"`
	Tags      []string `json:"tags" description:"Tag names, created when missing"`
}

type recipesBulkCategorizeParams struct {
	RecipeIDs  []string `json:"recipe_ids" description:"Recipe IDs to categorize"`
	Categories []string `json:"categories" description:"Category names, created when missing"`
}

type recipesBulkDeleteParams struct {
	RecipeIDs []string `json:"recipe_ids" description:"Recipe IDs to delete"`
}

type recipesBulkExportParams struct {
	RecipeIDs    []string `json:"recipe_ids" description:"Recipe IDs to export"`
	ExportFormat string   `json:"export_format,omitempty" description:"Export format (default json)"`
}

type recipesBulkSettingsParams struct {
	RecipeIDs []string       `json:"recipe_ids" description:"Recipe IDs to update"`
	Settings  map[string]any `json:"settings" description:"Settings flags to apply, e.g. {\"public\": true}"`
}

type recipesCreateFromImageParams struct {
	ImageData string `json:"image_data" description:"Base64-encoded image of the recipe"`
	Extension string `json:"extension,omitempty" description:"Image file extension (default jpg)"`
}

type recipesUploadImageParams struct {
	Slug     string `json:"slug" description:"Recipe slug or ID"`
	ImageURL string `json:"image_url" description:"URL of the image to attach"`
}

type recipesSetRatingParams struct {
	Slug       string  `json:"slug" description:"Recipe slug or ID"`
	Rating     float64 `json:"rating" description:"Rating value, 0 to 5"`
	IsFavorite *bool   `json:"is_favorite,omitempty" description:"Also mark as favorite"`
}

type recipesGetRatingParams struct {
	RecipeID string `json:"recipe_id" description:"Recipe ID"`
}

type recipesSuggestionsParams struct {
	Limit int `json:"limit,omitempty" description:"Maximum suggestions to return (default 10)"`
}

type recipesSharedListParams struct {
	RecipeID string `json:"recipe_id,omitempty" description:"Restrict to one recipe's share tokens"`
}

type recipesSharedCreateParams struct {
	RecipeID  string `json:"recipe_id" description:"Recipe ID to share"`
	ExpiresAt string `json:"expires_at,omitempty" description:"Token expiry as ISO timestamp"`
}

type recipesSharedItemParams struct {
	ItemID string `json:"item_id" description:"Share token ID"`
}

type recipesSharedAccessParams struct {
	TokenID string `json:"token_id" description:"Share token ID to resolve"`
}

func recipeToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_recipes_search": tool(func(ctx context.Context, p recipesSearchParams) string {
			return tools.RecipesSearch(ctx, p.Query, p.Tags, p.Categories, p.Limit)
		}),
		"mealie_recipes_get": tool(func(ctx context.Context, p recipesGetParams) string {
			return tools.RecipesGet(ctx, p.Slug)
		}),
		"mealie_recipes_list": tool(func(ctx context.Context, p recipesListParams) string {
			return tools.RecipesList(ctx, p.Page, p.PerPage)
		}),
		"mealie_recipes_create": tool(func(ctx context.Context, p recipesCreateParams) string {
			return tools.RecipesCreate(ctx, p.Name, p.Description, p.RecipeYield,
				p.TotalTime, p.PrepTime, p.CookTime,
				p.Ingredients, p.Instructions, p.Tags, p.Categories)
		}),
		"mealie_recipes_create_from_url": tool(func(ctx context.Context, p recipesCreateFromURLParams) string {
			return tools.RecipesCreateFromURL(ctx, p.URL, p.IncludeTags)
		}),
		"mealie_recipes_update": tool(func(ctx context.Context, p recipesUpdateParams) string {
			return tools.RecipesUpdate(ctx, p.Slug, p.Name, p.Description, p.RecipeYield,
				p.TotalTime, p.PrepTime, p.CookTime, p.OrgURL, p.Image,
				p.Ingredients, p.Instructions, p.Tags, p.Categories)
		}),
		"mealie_recipes_update_structured_ingredients": tool(func(ctx context.Context, p recipesStructuredIngredientsParams) string {
			return tools.RecipesUpdateStructuredIngredients(ctx, p.Slug, p.ParsedIngredients)
		}),
		"mealie_recipes_delete": tool(func(ctx context.Context, p recipesGetParams) string {
			return tools.RecipesDelete(ctx, p.Slug)
		}),
		"mealie_recipes_duplicate": tool(func(ctx context.Context, p recipesDuplicateParams) string {
			return tools.RecipesDuplicate(ctx, p.Slug, p.NewName)
		}),
		"mealie_recipes_update_last_made": tool(func(ctx context.Context, p recipesUpdateLastMadeParams) string {
			return tools.RecipesUpdateLastMade(ctx, p.Slug, p.Timestamp)
		}),
		"mealie_recipes_create_from_urls_bulk": tool(func(ctx context.Context, p recipesBulkURLsParams) string {
			return tools.RecipesCreateFromURLsBulk(ctx, p.URLs, p.IncludeTags)
		}),
		"mealie_recipes_bulk_tag": tool(func(ctx context.Context, p recipesBulkTagParams) string {
			return tools.RecipesBulkTag(ctx, p.RecipeIDs, p.Tags)
		}),
		"mealie_recipes_bulk_categorize": tool(func(ctx context.Context, p recipesBulkCategorizeParams) string {
			return tools.RecipesBulkCategorize(ctx, p.RecipeIDs, p.Categories)
		}),
		"mealie_recipes_bulk_delete": tool(func(ctx context.Context, p recipesBulkDeleteParams) string {
			return tools.RecipesBulkDelete(ctx, p.RecipeIDs)
		}),
		"mealie_recipes_bulk_export": tool(func(ctx context.Context, p recipesBulkExportParams) string {
			return tools.RecipesBulkExport(ctx, p.RecipeIDs, p.ExportFormat)
		}),
		"mealie_recipes_bulk_update_settings": tool(func(ctx context.Context, p recipesBulkSettingsParams) string {
			return tools.RecipesBulkUpdateSettings(ctx, p.RecipeIDs, p.Settings)
		}),
		"mealie_recipes_create_from_image": tool(func(ctx context.Context, p recipesCreateFromImageParams) string {
			return tools.RecipesCreateFromImage(ctx, p.ImageData, p.Extension)
		}),
		"mealie_recipes_upload_image_from_url": tool(func(ctx context.Context, p recipesUploadImageParams) string {
			return tools.RecipesUploadImageFromURL(ctx, p.Slug, p.ImageURL)
		}),
		"mealie_recipes_set_rating": tool(func(ctx context.Context, p recipesSetRatingParams) string {
			return tools.RecipesSetRating(ctx, p.Slug, p.Rating, p.IsFavorite)
		}),
		"mealie_recipes_get_ratings": tool(func(ctx context.Context, _ pingParams) string {
			return tools.RecipesGetRatings(ctx)
		}),
		"mealie_recipes_get_rating": tool(func(ctx context.Context, p recipesGetRatingParams) string {
			return tools.RecipesGetRating(ctx, p.RecipeID)
		}),
		"mealie_recipes_suggestions": tool(func(ctx context.Context, p recipesSuggestionsParams) string {
			return tools.RecipesSuggestions(ctx, p.Limit)
		}),
		"mealie_recipes_add_favorite": tool(func(ctx context.Context, p recipesGetParams) string {
			return tools.RecipesAddFavorite(ctx, p.Slug)
		}),
		"mealie_recipes_remove_favorite": tool(func(ctx context.Context, p recipesGetParams) string {
			return tools.RecipesRemoveFavorite(ctx, p.Slug)
		}),
		"mealie_recipes_get_favorites": tool(func(ctx context.Context, _ pingParams) string {
			return tools.RecipesGetFavorites(ctx)
		}),
		"mealie_recipes_shared_list": tool(func(ctx context.Context, p recipesSharedListParams) string {
			return tools.RecipesSharedList(ctx, p.RecipeID)
		}),
		"mealie_recipes_shared_create": tool(func(ctx context.Context, p recipesSharedCreateParams) string {
			return tools.RecipesSharedCreate(ctx, p.RecipeID, p.ExpiresAt)
		}),
		"mealie_recipes_shared_get": tool(func(ctx context.Context, p recipesSharedItemParams) string {
			return tools.RecipesSharedGet(ctx, p.ItemID)
		}),
		"mealie_recipes_shared_delete": tool(func(ctx context.Context, p recipesSharedItemParams) string {
			return tools.RecipesSharedDelete(ctx, p.ItemID)
		}),
		"mealie_recipes_shared_access": tool(func(ctx context.Context, p recipesSharedAccessParams) string {
			return tools.RecipesSharedAccess(ctx, p.TokenID)
		}),
	}
}
