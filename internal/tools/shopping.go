// internal/tools/shopping.go
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// ShoppingListsList summarizes every shopping list with item counts.
func ShoppingListsList(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListShoppingLists(ctx)
		if err != nil {
			return nil, err
		}

		lists := make([]map[string]any, 0)
		for _, item := range listEntries(response) {
			list := client.AsObject(item)
			items := list.List("listItems")

			checked := 0
			for _, entry := range items {
				if client.AsObject(entry).Bool("checked") {
					checked++
				}
			}

			lists = append(lists, map[string]any{
				"id":              list["id"],
				"name":            list["name"],
				"created_at":      list["createdAt"],
				"updated_at":      list["updateAt"],
				"total_items":     len(items),
				"checked_items":   checked,
				"unchecked_items": len(items) - checked,
			})
		}

		return map[string]any{
			"count": len(lists),
			"lists": lists,
		}, nil
	})
}

// ShoppingListsGet returns a list with its items flattened to
// agent-friendly fields.
func ShoppingListsGet(ctx context.Context, listID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetShoppingList(ctx, listID)
		if err != nil {
			return nil, err
		}
		obj, ok := response.(map[string]any)
		if !ok || len(obj) == 0 {
			return map[string]any{
				"error": fmt.Sprintf("Shopping list '%s' not found", listID),
			}, nil
		}
		list := client.Object(obj)

		formatted := make([]map[string]any, 0)
		checked := 0
		for _, entry := range list.List("listItems") {
			item := client.AsObject(entry)
			if item.Bool("checked") {
				checked++
			}
			formatted = append(formatted, map[string]any{
				"id":       item["id"],
				"checked":  item.Bool("checked"),
				"quantity": item["quantity"],
				"unit":     organizerName(item["unit"]),
				"food":     organizerName(item["food"]),
				"note":     item["note"],
				"display":  item["display"],
			})
		}

		return map[string]any{
			"id":            list["id"],
			"name":          list["name"],
			"created_at":    list["createdAt"],
			"updated_at":    list["updateAt"],
			"items":         formatted,
			"total_items":   len(formatted),
			"checked_count": checked,
		}, nil
	})
}

func organizerName(v any) any {
	if obj, ok := v.(map[string]any); ok {
		return obj["name"]
	}
	return v
}

func ShoppingListsCreate(ctx context.Context, name string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.CreateShoppingList(ctx, name)
		if err != nil {
			return nil, err
		}
		list := client.AsObject(response)

		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Shopping list '%s' created", name),
			"list": map[string]any{
				"id":         list["id"],
				"name":       list["name"],
				"created_at": list["createdAt"],
			},
		}, nil
	})
}

func ShoppingListsDelete(ctx context.Context, listID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteShoppingList(ctx, listID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Shopping list '%s' deleted", listID),
		}, nil
	})
}

func ShoppingItemsAdd(ctx context.Context, listID, note string, quantity *float64, unitID, foodID, display string) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"shoppingListId": listID,
		}
		if note != "" {
			payload["note"] = note
		}
		if quantity != nil {
			payload["quantity"] = *quantity
		}
		if unitID != "" {
			payload["unitId"] = unitID
		}
		if foodID != "" {
			payload["foodId"] = foodID
		}
		if display != "" {
			payload["display"] = display
		}

		item, err := c.CreateShoppingItem(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Item added to shopping list",
			"item":    item,
		}, nil
	})
}

// ShoppingItemsAddBulk adds a batch of free-text items, collecting
// per-item failures.
func ShoppingItemsAddBulk(ctx context.Context, listID string, items []string) string {
	return run(func(c *client.Client) (any, error) {
		added := 0
		itemErrors := make([]map[string]any, 0)

		for _, itemText := range items {
			payload := map[string]any{
				"shoppingListId": listID,
				"note":           itemText,
			}
			if _, err := c.CreateShoppingItem(ctx, payload); err != nil {
				itemErrors = append(itemErrors, map[string]any{
					"item":  itemText,
					"error": err.Error(),
				})
				continue
			}
			added++
		}

		result := map[string]any{
			"success":         true,
			"message":         fmt.Sprintf("Added %d of %d items", added, len(items)),
			"added_count":     added,
			"total_requested": len(items),
		}
		if len(itemErrors) > 0 {
			result["errors"] = itemErrors
		}
		return result, nil
	})
}

func ShoppingItemsCheck(ctx context.Context, itemID string, checked bool) string {
	return run(func(c *client.Client) (any, error) {
		item, err := c.UpdateShoppingItem(ctx, itemID, map[string]any{
			"id":      itemID,
			"checked": checked,
		})
		if err != nil {
			return nil, err
		}

		status := "checked"
		if !checked {
			status = "unchecked"
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Item '%s' marked as %s", itemID, status),
			"item":    item,
		}, nil
	})
}

func ShoppingItemsDelete(ctx context.Context, itemID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteShoppingItem(ctx, itemID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Item '%s' removed from shopping list", itemID),
		}, nil
	})
}

// ShoppingItemsAddRecipe adds all of a recipe's ingredients to a
// list, optionally scaled.
func ShoppingItemsAddRecipe(ctx context.Context, listID, recipeID string, scale float64) string {
	if scale == 0 {
		scale = 1.0
	}
	return run(func(c *client.Client) (any, error) {
		response, err := c.AddRecipeToShoppingList(ctx, listID, recipeID, scale)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe ingredients added to shopping list",
			"list":    response,
		}, nil
	})
}

func ShoppingItemsRemoveRecipe(ctx context.Context, listID, recipeID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.DeleteRecipeFromShoppingList(ctx, listID, recipeID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Recipe ingredients removed from shopping list",
			"list":    response,
		}, nil
	})
}

// ShoppingGenerateFromMealplan reads the meal plan for a date range
// and builds a shopping list from every planned recipe. Per-recipe
// failures are collected, not fatal.
func ShoppingGenerateFromMealplan(ctx context.Context, startDate, endDate, listName string) string {
	return run(func(c *client.Client) (any, error) {
		start := time.Now()
		if startDate != "" {
			parsed, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return nil, fmt.Errorf("invalid start_date %q: use YYYY-MM-DD", startDate)
			}
			start = parsed
		}
		end := start.AddDate(0, 0, 6)
		if endDate != "" {
			parsed, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				return nil, fmt.Errorf("invalid end_date %q: use YYYY-MM-DD", endDate)
			}
			end = parsed
		}
		startStr := start.Format("2006-01-02")
		endStr := end.Format("2006-01-02")

		mealplanResponse, err := c.ListMealplans(ctx, startStr, endStr)
		if err != nil {
			return nil, err
		}
		entries := listEntries(mealplanResponse)
		if len(entries) == 0 {
			return map[string]any{
				"error":      "No meal plans found for the specified date range",
				"start_date": startStr,
				"end_date":   endStr,
			}, nil
		}

		recipeIDs := make([]string, 0, len(entries))
		for _, item := range entries {
			if recipeID := client.AsObject(item).Str("recipeId"); recipeID != "" {
				recipeIDs = append(recipeIDs, recipeID)
			}
		}
		if len(recipeIDs) == 0 {
			return map[string]any{
				"error":      "No recipes found in meal plan for the specified date range",
				"start_date": startStr,
				"end_date":   endStr,
			}, nil
		}

		if listName == "" {
			listName = fmt.Sprintf("Meal Plan - %s to %s", start.Format("Jan 02"), end.Format("Jan 02"))
		}

		createResponse, err := c.CreateShoppingList(ctx, listName)
		if err != nil {
			return nil, err
		}
		created := client.AsObject(createResponse)
		listID := created.Str("id")
		if listID == "" {
			return map[string]any{"error": "Failed to create shopping list"}, nil
		}

		recipesAdded := 0
		recipesFailed := make([]map[string]any, 0)
		for _, recipeID := range recipeIDs {
			if _, err := c.AddRecipeToShoppingList(ctx, listID, recipeID, 1.0); err != nil {
				recipesFailed = append(recipesFailed, map[string]any{
					"recipe_id": recipeID,
					"error":     err.Error(),
				})
				continue
			}
			recipesAdded++
		}

		itemCount := 0
		if finalList, err := c.GetShoppingList(ctx, listID); err == nil {
			itemCount = len(client.AsObject(finalList).List("listItems"))
		}

		result := map[string]any{
			"success":   true,
			"message":   fmt.Sprintf("Shopping list '%s' created with %d items", listName, itemCount),
			"list_id":   listID,
			"list_name": listName,
			"date_range": map[string]any{
				"start": startStr,
				"end":   endStr,
			},
			"recipes_processed": recipesAdded,
			"total_items":       itemCount,
		}
		if len(recipesFailed) > 0 {
			result["recipes_failed"] = recipesFailed
		}
		return result, nil
	})
}

// ShoppingListsClearChecked removes every checked item from a list.
func ShoppingListsClearChecked(ctx context.Context, listID string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetShoppingList(ctx, listID)
		if err != nil {
			return nil, err
		}
		obj, ok := response.(map[string]any)
		if !ok || len(obj) == 0 {
			return map[string]any{
				"error": fmt.Sprintf("Shopping list '%s' not found", listID),
			}, nil
		}

		checkedItems := make([]client.Object, 0)
		for _, entry := range client.Object(obj).List("listItems") {
			item := client.AsObject(entry)
			if item.Bool("checked") {
				checkedItems = append(checkedItems, item)
			}
		}
		if len(checkedItems) == 0 {
			return map[string]any{
				"success":       true,
				"message":       "No checked items to remove",
				"removed_count": 0,
			}, nil
		}

		removed := 0
		itemErrors := make([]map[string]any, 0)
		for _, item := range checkedItems {
			itemID := item.Str("id")
			if itemID == "" {
				continue
			}
			if _, err := c.DeleteShoppingItem(ctx, itemID); err != nil {
				itemErrors = append(itemErrors, map[string]any{
					"item_id": itemID,
					"error":   err.Error(),
				})
				continue
			}
			removed++
		}

		result := map[string]any{
			"success":       true,
			"message":       fmt.Sprintf("Removed %d checked items", removed),
			"removed_count": removed,
		}
		if len(itemErrors) > 0 {
			result["errors"] = itemErrors
		}
		return result, nil
	})
}
