// internal/tools/recipes.go
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// recipeSummary extracts the fields an agent usually wants from a full
// recipe record, flattening tag and category objects to their names.
func recipeSummary(recipe client.Object) map[string]any {
	return map[string]any{
		"name":        recipe["name"],
		"slug":        recipe["slug"],
		"description": recipe["description"],
		"rating":      recipe["rating"],
		"tags":        organizerNames(recipe.List("tags")),
		"categories":  organizerNames(recipe.List("recipeCategory")),
	}
}

func organizerNames(items []any) []any {
	names := make([]any, 0, len(items))
	for _, item := range items {
		names = append(names, client.AsObject(item)["name"])
	}
	return names
}

// RecipesSearch filters recipes by free text, tags, and categories.
func RecipesSearch(ctx context.Context, query string, tags, categories []string, limit int) string {
	if limit <= 0 {
		limit = 10
	}
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListRecipes(ctx, 1, limit, query, tags, categories, "", "")
		if err != nil {
			return nil, err
		}

		listing, ok := response.(map[string]any)
		if !ok || !client.Object(listing).Has("items") {
			return response, nil
		}
		page := client.Object(listing)

		recipes := make([]map[string]any, 0)
		for _, item := range page.List("items") {
			recipes = append(recipes, recipeSummary(client.AsObject(item)))
		}

		total := len(recipes)
		if page.Has("total") {
			total = page.Int("total")
		}
		return map[string]any{
			"total":   total,
			"count":   len(recipes),
			"recipes": recipes,
		}, nil
	})
}

// RecipesGet returns the full recipe record unmodified.
func RecipesGet(ctx context.Context, slug string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetRecipe(ctx, slug)
	})
}

func RecipesList(ctx context.Context, page, perPage int) string {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListRecipes(ctx, page, perPage, "", nil, nil, "", "")
		if err != nil {
			return nil, err
		}

		listing, ok := response.(map[string]any)
		if !ok {
			return response, nil
		}
		result := client.Object(listing)

		items := result.List("items")
		if items == nil {
			items = []any{}
		}
		return map[string]any{
			"page":        result.Int("page"),
			"per_page":    result.Int("perPage"),
			"total":       result.Int("total"),
			"total_pages": result.Int("totalPages"),
			"items":       items,
		}, nil
	})
}

// resolveOrganizers maps human-readable names to full {id, name, slug}
// objects, creating any that don't exist yet. With existing == nil it
// runs in REPLACE mode (only the named organizers are returned); with
// a non-nil existing set it runs in ADDITIVE mode, merging new names
// into the set and skipping ones already present by name.
func resolveOrganizers(ctx context.Context, c *client.Client, kind string, names []string, existing []any) ([]any, error) {
	listing, err := c.ListOrganizers(ctx, kind)
	if err != nil {
		return nil, err
	}

	var all []any
	if m, ok := listing.(map[string]any); ok {
		all = client.Object(m).List("items")
	} else {
		all = client.AsList(listing)
	}

	lookup := make(map[string]any, len(all))
	for _, item := range all {
		lookup[client.AsObject(item).Str("name")] = item
	}

	resolved := make([]any, 0, len(existing)+len(names))
	seen := make(map[string]bool)
	for _, item := range existing {
		resolved = append(resolved, item)
		seen[client.AsObject(item).Str("name")] = true
	}

	for _, name := range names {
		if seen[name] {
			continue
		}
		if found, ok := lookup[name]; ok {
			resolved = append(resolved, found)
			continue
		}
		created, err := c.CreateOrganizer(ctx, kind, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, created)
	}

	return resolved, nil
}

// slugFromCreateResponse normalizes Mealie's create responses, which
// are sometimes a bare JSON string slug and sometimes a full object.
func slugFromCreateResponse(response any) string {
	switch v := response.(type) {
	case string:
		return strings.Trim(v, `"`)
	case map[string]any:
		obj := client.Object(v)
		if slug := obj.Str("slug"); slug != "" {
			return slug
		}
		return obj.Str("id")
	default:
		return strings.Trim(fmt.Sprintf("%v", response), `"`)
	}
}

// RecipesCreate creates a recipe stub by name, then fills in the
// optional fields with a follow-up update when any were provided.
func RecipesCreate(ctx context.Context, name, description, recipeYield, totalTime, prepTime, cookTime string, ingredients, instructions, tags, categories []string) string {
	return run(func(c *client.Client) (any, error) {
		createResponse, err := c.CreateRecipe(ctx, name)
		if err != nil {
			return nil, err
		}
		slug := slugFromCreateResponse(createResponse)

		hasUpdates := description != "" || recipeYield != "" || totalTime != "" || prepTime != "" || cookTime != "" ||
			len(ingredients) > 0 || len(instructions) > 0 || len(tags) > 0 || len(categories) > 0

		if hasUpdates {
			raw, err := c.GetRecipe(ctx, slug)
			if err != nil {
				return nil, err
			}
			recipe := client.AsObject(raw)

			payload := map[string]any{
				"id":          recipe["id"],
				"userId":      recipe["userId"],
				"householdId": recipe["householdId"],
				"groupId":     recipe["groupId"],
				"name":        name,
				"slug":        slug,
			}
			if description != "" {
				payload["description"] = description
			}
			if recipeYield != "" {
				payload["recipeYield"] = recipeYield
			}
			if totalTime != "" {
				payload["totalTime"] = totalTime
			}
			if prepTime != "" {
				payload["prepTime"] = prepTime
			}
			if cookTime != "" {
				payload["cookTime"] = cookTime
			}
			if len(ingredients) > 0 {
				payload["recipeIngredient"] = simpleIngredients(ingredients)
			}
			if len(instructions) > 0 {
				payload["recipeInstructions"] = simpleInstructions(instructions)
			}
			if len(tags) > 0 {
				resolved, err := resolveOrganizers(ctx, c, client.OrganizerTags, tags, nil)
				if err != nil {
					return nil, err
				}
				payload["tags"] = resolved
			}
			if len(categories) > 0 {
				resolved, err := resolveOrganizers(ctx, c, client.OrganizerCategories, categories, nil)
				if err != nil {
					return nil, err
				}
				payload["recipeCategory"] = resolved
			}

			if _, err := c.UpdateRecipe(ctx, slug, payload); err != nil {
				return nil, err
			}
		}

		raw, err := c.GetRecipe(ctx, slug)
		if err != nil {
			return nil, err
		}
		final := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' created", name),
			"recipe": map[string]any{
				"name":        final["name"],
				"slug":        final["slug"],
				"id":          final["id"],
				"description": final["description"],
			},
		}, nil
	})
}

func simpleIngredients(ingredients []string) []map[string]any {
	converted := make([]map[string]any, 0, len(ingredients))
	for _, ing := range ingredients {
		converted = append(converted, map[string]any{"note": ing, "display": ing})
	}
	return converted
}

func simpleInstructions(instructions []string) []map[string]any {
	converted := make([]map[string]any, 0, len(instructions))
	for _, inst := range instructions {
		converted = append(converted, map[string]any{"text": inst})
	}
	return converted
}

func RecipesCreateFromURL(ctx context.Context, recipeURL string, includeTags bool) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.CreateRecipeFromURL(ctx, recipeURL, includeTags)
		if err != nil {
			return nil, err
		}
		slug := slugFromCreateResponse(response)

		raw, err := c.GetRecipe(ctx, slug)
		if err != nil {
			return nil, err
		}
		recipe := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": "Recipe imported from URL",
			"recipe": map[string]any{
				"name":        recipe["name"],
				"slug":        recipe["slug"],
				"id":          recipe["id"],
				"description": recipe["description"],
				"orgURL":      recipe["orgURL"],
			},
		}, nil
	})
}

// RecipesUpdate updates a recipe in place. Scalar fields are
// preserved from the existing record when nil; tags and categories
// are ADDITIVE. When only tags/categories changed a PATCH is used to
// sidestep name validation on the full PUT.
func RecipesUpdate(ctx context.Context, slug string, name, description, recipeYield, totalTime, prepTime, cookTime, orgURL, image *string, ingredients, instructions, tags, categories []string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetRecipe(ctx, slug)
		if err != nil {
			return nil, err
		}
		recipe := client.AsObject(raw)

		pick := func(override *string, key string) any {
			if override != nil {
				return *override
			}
			return recipe[key]
		}

		payload := map[string]any{
			"id":          recipe["id"],
			"userId":      recipe["userId"],
			"householdId": recipe["householdId"],
			"groupId":     recipe["groupId"],
			"name":        pick(name, "name"),
			"slug":        slug,
			"description": pick(description, "description"),
			"recipeYield": pick(recipeYield, "recipeYield"),
			"totalTime":   pick(totalTime, "totalTime"),
			"prepTime":    pick(prepTime, "prepTime"),
			"cookTime":    pick(cookTime, "cookTime"),
			"orgURL":      pick(orgURL, "orgURL"),
			"image":       pick(image, "image"),
		}

		if ingredients != nil {
			payload["recipeIngredient"] = simpleIngredients(ingredients)
		} else if existing := recipe.List("recipeIngredient"); existing != nil {
			payload["recipeIngredient"] = existing
		} else {
			payload["recipeIngredient"] = []any{}
		}

		if instructions != nil {
			payload["recipeInstructions"] = simpleInstructions(instructions)
		} else if existing := recipe.List("recipeInstructions"); existing != nil {
			payload["recipeInstructions"] = existing
		} else {
			payload["recipeInstructions"] = []any{}
		}

		existingTags := recipe.List("tags")
		if existingTags == nil {
			existingTags = []any{}
		}
		if tags != nil {
			resolved, err := resolveOrganizers(ctx, c, client.OrganizerTags, tags, existingTags)
			if err != nil {
				return nil, err
			}
			payload["tags"] = resolved
		} else {
			payload["tags"] = existingTags
		}

		existingCategories := recipe.List("recipeCategory")
		if existingCategories == nil {
			existingCategories = []any{}
		}
		if categories != nil {
			resolved, err := resolveOrganizers(ctx, c, client.OrganizerCategories, categories, existingCategories)
			if err != nil {
				return nil, err
			}
			payload["recipeCategory"] = resolved
		} else {
			payload["recipeCategory"] = existingCategories
		}

		organizersOnly := (tags != nil || categories != nil) &&
			name == nil && description == nil && recipeYield == nil && totalTime == nil &&
			prepTime == nil && cookTime == nil && orgURL == nil && image == nil &&
			ingredients == nil && instructions == nil

		if organizersOnly {
			if _, err := c.PatchRecipe(ctx, slug, payload); err != nil {
				return nil, err
			}
		} else {
			if _, err := c.UpdateRecipe(ctx, slug, payload); err != nil {
				return nil, err
			}
		}

		raw, err = c.GetRecipe(ctx, slug)
		if err != nil {
			return nil, err
		}
		updated := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' updated", updated.Str("name")),
			"recipe": map[string]any{
				"name":        updated["name"],
				"slug":        updated["slug"],
				"id":          updated["id"],
				"description": updated["description"],
				"tags":        organizerNames(updated.List("tags")),
				"categories":  organizerNames(updated.List("recipeCategory")),
			},
		}, nil
	})
}

// RecipesUpdateStructuredIngredients replaces a recipe's ingredients
// with structured parser output. Foods and units without IDs are
// created first so the assignment doesn't trip referential checks on
// the server.
func RecipesUpdateStructuredIngredients(ctx context.Context, slug string, parsedIngredients []any) string {
	return run(func(c *client.Client) (any, error) {
		ingredientData := make([]client.Object, 0, len(parsedIngredients))
		for _, parsed := range parsedIngredients {
			obj := client.AsObject(parsed)
			if obj.Has("ingredient") {
				ingredientData = append(ingredientData, obj.Object("ingredient"))
			} else {
				ingredientData = append(ingredientData, obj)
			}
		}

		// Pre-create missing units and foods; creation failures are
		// tolerated and the bare name is sent instead.
		createdUnits := make(map[string]bool)
		createdFoods := make(map[string]bool)
		for _, data := range ingredientData {
			if unit := data.Object("unit"); unit.Has("name") && unit.Str("id") == "" {
				unitName := unit.Str("name")
				if unitName != "" && !createdUnits[unitName] {
					createdUnits[unitName] = true
					if created, err := c.CreateUnit(ctx, map[string]any{"name": unitName}); err == nil {
						unit["id"] = client.AsObject(created)["id"]
					}
				}
			}
			if food := data.Object("food"); food.Has("name") && food.Str("id") == "" {
				foodName := food.Str("name")
				if foodName != "" && !createdFoods[foodName] {
					createdFoods[foodName] = true
					if created, err := c.CreateFood(ctx, foodName, "", ""); err == nil {
						food["id"] = client.AsObject(created)["id"]
					}
				}
			}
		}

		mealieIngredients := make([]map[string]any, 0, len(ingredientData))
		for _, data := range ingredientData {
			ingredient := map[string]any{}

			if data.Has("quantity") {
				ingredient["quantity"] = data["quantity"]
			}
			if unit := data["unit"]; unit != nil {
				ingredient["unit"] = organizerRef(unit)
			}
			if food := data["food"]; food != nil {
				ingredient["food"] = organizerRef(food)
			}
			if note := data.Str("note"); note != "" {
				ingredient["note"] = note
			}

			if data.Has("display") {
				ingredient["display"] = data["display"]
			} else {
				ingredient["display"] = buildDisplay(ingredient)
			}

			if data.Has("referenceId") {
				ingredient["referenceId"] = data["referenceId"]
			} else {
				ingredient["referenceId"] = uuid.NewString()
			}

			ingredient["title"] = data.StrOr("title", "")
			ingredient["originalText"] = data["originalText"]
			ingredient["referencedRecipe"] = data["referencedRecipe"]

			mealieIngredients = append(mealieIngredients, ingredient)
		}

		raw, err := c.UpdateRecipeIngredients(ctx, slug, mealieIngredients)
		if err != nil {
			return nil, err
		}
		updated := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' updated with %d structured ingredients",
				updated.StrOr("name", slug), len(mealieIngredients)),
			"recipe": map[string]any{
				"name":             updated["name"],
				"slug":             updated["slug"],
				"id":               updated["id"],
				"ingredient_count": len(mealieIngredients),
			},
			"debug_ingredients_sent": mealieIngredients,
		}, nil
	})
}

// organizerRef normalizes a unit/food value to either an {id, name}
// pair or a bare name string when no ID is known.
func organizerRef(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	ref := client.Object(obj)
	if id := ref.Str("id"); id != "" {
		return map[string]any{"id": id, "name": ref["name"]}
	}
	if name := ref.Str("name"); name != "" {
		return name
	}
	return nil
}

func buildDisplay(ingredient map[string]any) string {
	parts := []string{}
	if quantity, ok := ingredient["quantity"]; ok {
		parts = append(parts, fmt.Sprintf("%v", quantity))
	}
	for _, key := range []string{"unit", "food"} {
		switch v := ingredient[key].(type) {
		case map[string]any:
			if name := client.Object(v).Str("name"); name != "" {
				parts = append(parts, name)
			}
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		}
	}
	if note, ok := ingredient["note"].(string); ok && note != "" {
		parts = append(parts, fmt.Sprintf("(%s)", note))
	}
	return strings.Join(parts, " ")
}

func RecipesDelete(ctx context.Context, slug string) string {
	return run(func(c *client.Client) (any, error) {
		recipeName := slug
		if raw, err := c.GetRecipe(ctx, slug); err == nil {
			if name := client.AsObject(raw).Str("name"); name != "" {
				recipeName = name
			}
		}

		if _, err := c.DeleteRecipe(ctx, slug); err != nil {
			return nil, err
		}

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' deleted", recipeName),
		}, nil
	})
}

func RecipesDuplicate(ctx context.Context, slug, newName string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.DuplicateRecipe(ctx, slug, newName)
		if err != nil {
			return nil, err
		}
		recipe := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": "Recipe duplicated successfully",
			"recipe": map[string]any{
				"name": recipe["name"],
				"slug": recipe["slug"],
				"id":   recipe["id"],
			},
		}, nil
	})
}

func RecipesUpdateLastMade(ctx context.Context, slug, timestamp string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.UpdateRecipeLastMade(ctx, slug, timestamp)
		if err != nil {
			return nil, err
		}
		recipe := client.AsObject(raw)

		return map[string]any{
			"success":   true,
			"message":   fmt.Sprintf("Recipe '%s' last made timestamp updated", recipe.Str("name")),
			"last_made": recipe["lastMade"],
		}, nil
	})
}

func RecipesCreateFromURLsBulk(ctx context.Context, urls []string, includeTags bool) string {
	return run(func(c *client.Client) (any, error) {
		results, err := c.CreateRecipesFromURLsBulk(ctx, urls, includeTags)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Bulk import initiated for %d URLs", len(urls)),
			"results": results,
		}, nil
	})
}

// slugsForRecipeIDs converts recipe IDs to slugs, which the
// bulk-action endpoints require.
func slugsForRecipeIDs(ctx context.Context, c *client.Client, recipeIDs []string) ([]string, error) {
	slugs := make([]string, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		raw, err := c.GetRecipe(ctx, recipeID)
		if err != nil {
			return nil, err
		}
		slugs = append(slugs, client.AsObject(raw).Str("slug"))
	}
	return slugs, nil
}

func organizerObjects(ctx context.Context, c *client.Client, kind string, names []string) ([]map[string]any, error) {
	resolved, err := resolveOrganizers(ctx, c, kind, names, nil)
	if err != nil {
		return nil, err
	}
	objects := make([]map[string]any, 0, len(resolved))
	for _, item := range resolved {
		objects = append(objects, client.AsObject(item))
	}
	return objects, nil
}

func RecipesBulkTag(ctx context.Context, recipeIDs, tags []string) string {
	return run(func(c *client.Client) (any, error) {
		slugs, err := slugsForRecipeIDs(ctx, c, recipeIDs)
		if err != nil {
			return nil, err
		}
		tagObjects, err := organizerObjects(ctx, c, client.OrganizerTags, tags)
		if err != nil {
			return nil, err
		}
		results, err := c.BulkTagRecipes(ctx, slugs, tagObjects)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Tagged %d recipes with %d tag(s)", len(recipeIDs), len(tags)),
			"results": results,
		}, nil
	})
}

func RecipesBulkCategorize(ctx context.Context, recipeIDs, categories []string) string {
	return run(func(c *client.Client) (any, error) {
		slugs, err := slugsForRecipeIDs(ctx, c, recipeIDs)
		if err != nil {
			return nil, err
		}
		categoryObjects, err := organizerObjects(ctx, c, client.OrganizerCategories, categories)
		if err != nil {
			return nil, err
		}
		results, err := c.BulkCategorizeRecipes(ctx, slugs, categoryObjects)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Categorized %d recipes with %d category(ies)", len(recipeIDs), len(categories)),
			"results": results,
		}, nil
	})
}

func RecipesBulkDelete(ctx context.Context, recipeIDs []string) string {
	return run(func(c *client.Client) (any, error) {
		results, err := c.BulkDeleteRecipes(ctx, recipeIDs)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Deleted %d recipe(s)", len(recipeIDs)),
			"results": results,
		}, nil
	})
}

func RecipesBulkExport(ctx context.Context, recipeIDs []string, exportFormat string) string {
	if exportFormat == "" {
		exportFormat = "json"
	}
	return run(func(c *client.Client) (any, error) {
		results, err := c.BulkExportRecipes(ctx, recipeIDs, exportFormat)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Exported %d recipe(s) as %s", len(recipeIDs), exportFormat),
			"data":    results,
		}, nil
	})
}

func RecipesBulkUpdateSettings(ctx context.Context, recipeIDs []string, settings map[string]any) string {
	return run(func(c *client.Client) (any, error) {
		results, err := c.BulkUpdateRecipeSettings(ctx, recipeIDs, settings)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Updated settings for %d recipe(s)", len(recipeIDs)),
			"results": results,
		}, nil
	})
}

func RecipesCreateFromImage(ctx context.Context, imageData, extension string) string {
	if extension == "" {
		extension = "jpg"
	}
	return run(func(c *client.Client) (any, error) {
		raw, err := c.CreateRecipeFromImage(ctx, imageData, extension)
		if err != nil {
			return nil, err
		}
		recipe := client.AsObject(raw)

		return map[string]any{
			"success": true,
			"message": "Recipe created from image successfully",
			"recipe": map[string]any{
				"name": recipe["name"],
				"slug": recipe["slug"],
				"id":   recipe["id"],
			},
		}, nil
	})
}

// RecipesUploadImageFromURL downloads an image from an external URL
// and uploads it as the recipe's image.
func RecipesUploadImageFromURL(ctx context.Context, slug, imageURL string) string {
	return run(func(c *client.Client) (any, error) {
		imageData, extension, err := client.DownloadImage(ctx, imageURL)
		if err != nil {
			return nil, err
		}

		if _, err := c.UploadRecipeImage(ctx, slug, imageData, extension); err != nil {
			return nil, err
		}

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Image uploaded to recipe '%s'", slug),
		}, nil
	})
}

func RecipesSetRating(ctx context.Context, slug string, rating float64, isFavorite *bool) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.SetRecipeRating(ctx, slug, rating, isFavorite)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Rating set for recipe '%s'", slug),
			"rating":  result,
		}, nil
	})
}

func RecipesGetRatings(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.GetUserRatings(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"ratings": result,
		}, nil
	})
}

func RecipesGetRating(ctx context.Context, recipeID string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.GetRecipeRating(ctx, recipeID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"rating":  result,
		}, nil
	})
}

func RecipesSuggestions(ctx context.Context, limit int) string {
	if limit <= 0 {
		limit = 10
	}
	return run(func(c *client.Client) (any, error) {
		suggestions, err := c.GetRecipeSuggestions(ctx, limit)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"count":       len(client.AsList(suggestions)),
			"suggestions": suggestions,
		}, nil
	})
}

func RecipesAddFavorite(ctx context.Context, slug string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.AddRecipeFavorite(ctx, slug)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' added to favorites", slug),
			"result":  result,
		}, nil
	})
}

func RecipesRemoveFavorite(ctx context.Context, slug string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.RemoveRecipeFavorite(ctx, slug)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Recipe '%s' removed from favorites", slug),
			"result":  result,
		}, nil
	})
}

func RecipesGetFavorites(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		favorites, err := c.GetUserFavorites(ctx)
		if err != nil {
			return nil, err
		}

		items, ok := favorites.([]any)
		if !ok {
			return favorites, nil
		}

		recipes := make([]map[string]any, 0, len(items))
		for _, item := range items {
			recipes = append(recipes, recipeSummary(client.AsObject(item)))
		}
		return map[string]any{
			"count":     len(recipes),
			"favorites": recipes,
		}, nil
	})
}

func RecipesSharedList(ctx context.Context, recipeID string) string {
	return run(func(c *client.Client) (any, error) {
		shared, err := c.ListSharedRecipes(ctx, recipeID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":        true,
			"count":          len(client.AsList(shared)),
			"shared_recipes": shared,
		}, nil
	})
}

func RecipesSharedCreate(ctx context.Context, recipeID, expiresAt string) string {
	return run(func(c *client.Client) (any, error) {
		share, err := c.CreateSharedRecipe(ctx, recipeID, expiresAt)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Share link created for recipe %s", recipeID),
			"share":   share,
		}, nil
	})
}

func RecipesSharedGet(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		share, err := c.GetSharedRecipe(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"share":   share,
		}, nil
	})
}

func RecipesSharedDelete(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteSharedRecipe(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Share link %s deleted", itemID),
		}, nil
	})
}

func RecipesSharedAccess(ctx context.Context, tokenID string) string {
	return run(func(c *client.Client) (any, error) {
		recipe, err := c.AccessSharedRecipe(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"recipe":  recipe,
		}, nil
	})
}
