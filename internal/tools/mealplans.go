// internal/tools/mealplans.go
package tools

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// ClearField is a sentinel value for update operations: passing it
// for an optional field sends an explicit null so the server clears
// the stored value instead of preserving it.
const ClearField = "__CLEAR__"

var validEntryTypes = []string{"breakfast", "lunch", "dinner", "side", "snack"}

func isValidEntryType(entryType string) bool {
	for _, valid := range validEntryTypes {
		if strings.EqualFold(entryType, valid) {
			return true
		}
	}
	return false
}

func invalidEntryTypeError(entryType string) string {
	return jsonString(map[string]any{
		"error": fmt.Sprintf("Invalid entry_type '%s'. Must be one of: %s",
			entryType, strings.Join(validEntryTypes, ", ")),
	})
}

func mealplanSummary(entry client.Object, includeDate bool) map[string]any {
	recipe := entry.Object("recipe")
	summary := map[string]any{
		"id":          entry["id"],
		"title":       entry["title"],
		"text":        entry["text"],
		"recipe_id":   entry["recipeId"],
		"recipe_name": nil,
		"recipe_slug": nil,
	}
	if includeDate {
		summary["date"] = entry["date"]
		summary["entry_type"] = entry["entryType"]
	}
	if len(recipe) > 0 {
		summary["recipe_name"] = recipe["name"]
		summary["recipe_slug"] = recipe["slug"]
	}
	return summary
}

// MealplansList lists meal plan entries for a date range, defaulting
// to the week starting today.
func MealplansList(ctx context.Context, startDate, endDate string) string {
	return run(func(c *client.Client) (any, error) {
		start := time.Now()
		if startDate != "" {
			parsed, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return nil, fmt.Errorf("invalid start_date %q: use YYYY-MM-DD", startDate)
			}
			start = parsed
		}
		end := start.AddDate(0, 0, 7)
		if endDate != "" {
			parsed, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				return nil, fmt.Errorf("invalid end_date %q: use YYYY-MM-DD", endDate)
			}
			end = parsed
		}

		startStr := start.Format("2006-01-02")
		endStr := end.Format("2006-01-02")

		response, err := c.ListMealplans(ctx, startStr, endStr)
		if err != nil {
			return nil, err
		}

		items := listEntries(response)
		if items == nil {
			return response, nil
		}

		entries := make([]map[string]any, 0, len(items))
		for _, item := range items {
			entries = append(entries, mealplanSummary(client.AsObject(item), true))
		}

		return map[string]any{
			"start_date": startStr,
			"end_date":   endStr,
			"count":      len(entries),
			"entries":    entries,
		}, nil
	})
}

// MealplansToday returns today's entries grouped by entry type.
func MealplansToday(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetTodaysMealplans(ctx)
		if err != nil {
			return nil, err
		}
		return groupedByType(time.Now().Format("2006-01-02"), response), nil
	})
}

// MealplansGetByDate returns all entries for a single date, grouped
// by entry type.
func MealplansGetByDate(ctx context.Context, mealDate string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListMealplans(ctx, mealDate, mealDate)
		if err != nil {
			return nil, err
		}
		return groupedByType(mealDate, response), nil
	})
}

func groupedByType(day string, response any) map[string]any {
	items := listEntries(response)

	mealsByType := map[string]any{}
	for _, item := range items {
		entry := client.AsObject(item)
		entryType := strings.ToLower(entry.StrOr("entryType", "meal"))

		group, _ := mealsByType[entryType].([]map[string]any)
		group = append(group, mealplanSummary(entry, false))
		mealsByType[entryType] = group
	}

	return map[string]any{
		"date":  day,
		"count": len(items),
		"meals": mealsByType,
	}
}

func MealplansGet(ctx context.Context, mealplanID string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetMealplan(ctx, mealplanID)
	})
}

func MealplansCreate(ctx context.Context, mealDate, entryType, recipeID, title, text string) string {
	if !isValidEntryType(entryType) {
		return invalidEntryTypeError(entryType)
	}
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"date":      mealDate,
			"entryType": strings.ToLower(entryType),
		}
		if recipeID != "" {
			payload["recipeId"] = recipeID
		}
		if title != "" {
			payload["title"] = title
		}
		if text != "" {
			payload["text"] = text
		}

		entry, err := c.CreateMealplan(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan entry created for %s", mealDate),
			"entry":   entry,
		}, nil
	})
}

// MealplansUpdate updates a meal plan entry in place. Nil fields
// preserve the stored value; the ClearField sentinel sends null.
func MealplansUpdate(ctx context.Context, mealplanID string, mealDate, entryType, recipeID, title, text *string) string {
	if entryType != nil && !isValidEntryType(*entryType) {
		return invalidEntryTypeError(*entryType)
	}
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetMealplan(ctx, mealplanID)
		if err != nil {
			return nil, err
		}
		existing, ok := raw.(map[string]any)
		if !ok || len(existing) == 0 {
			return map[string]any{
				"error": fmt.Sprintf("Meal plan entry '%s' not found", mealplanID),
			}, nil
		}
		entry := client.Object(existing)

		payload := map[string]any{
			"id": mealplanID,
		}
		if mealDate != nil {
			payload["date"] = *mealDate
		} else {
			payload["date"] = entry["date"]
		}
		if entryType != nil {
			payload["entryType"] = strings.ToLower(*entryType)
		} else {
			payload["entryType"] = entry["entryType"]
		}

		setOptional := func(key string, override *string) {
			switch {
			case override != nil && *override == ClearField:
				payload[key] = nil
			case override != nil:
				payload[key] = *override
			case entry.Has(key):
				payload[key] = entry[key]
			}
		}
		setOptional("recipeId", recipeID)
		setOptional("title", title)
		setOptional("text", text)

		updated, err := c.UpdateMealplan(ctx, mealplanID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan entry '%s' updated", mealplanID),
			"entry":   updated,
		}, nil
	})
}

func MealplansDelete(ctx context.Context, mealplanID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteMealplan(ctx, mealplanID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan entry '%s' deleted", mealplanID),
		}, nil
	})
}

func randomSuggestion(recipe client.Object) map[string]any {
	return map[string]any{
		"recipe_id":   recipe["id"],
		"name":        recipe["name"],
		"slug":        recipe["slug"],
		"description": recipe["description"],
		"total_time":  recipe["totalTime"],
		"tags":        organizerNames(recipe.List("tags")),
	}
}

// MealplansRandom asks Mealie for a random meal suggestion. When the
// random endpoint is unavailable it falls back to picking a random
// recipe from the first listing page.
func MealplansRandom(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.GetRandomMealplan(ctx)
		if err == nil {
			if response == nil {
				return map[string]any{"error": "No random meal suggestion available"}, nil
			}
			if obj, ok := response.(map[string]any); ok {
				result := client.Object(obj)
				if recipe := result.Object("recipe"); len(recipe) > 0 {
					return map[string]any{
						"success":    true,
						"suggestion": randomSuggestion(recipe),
					}, nil
				}
			}
			return map[string]any{
				"success":    true,
				"suggestion": response,
			}, nil
		}

		listing, listErr := c.ListRecipes(ctx, 1, 100, "", nil, nil, "", "")
		if listErr != nil {
			return nil, err
		}
		if page, ok := listing.(map[string]any); ok {
			items := client.Object(page).List("items")
			if len(items) > 0 {
				recipe := client.AsObject(items[rand.Intn(len(items))])
				return map[string]any{
					"success":    true,
					"suggestion": randomSuggestion(recipe),
				}, nil
			}
		}
		return map[string]any{"error": "No recipes available for suggestion"}, nil
	})
}

// MealplansSearch filters meal plan entries in a date range by a
// case-insensitive match against recipe name, title, or text.
func MealplansSearch(ctx context.Context, query, startDate, endDate string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListMealplans(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}

		needle := strings.ToLower(query)
		matches := make([]any, 0)
		for _, item := range listEntries(response) {
			entry := client.AsObject(item)
			haystack := []string{
				entry.Str("title"),
				entry.Str("text"),
				entry.Object("recipe").Str("name"),
			}
			for _, candidate := range haystack {
				if candidate != "" && strings.Contains(strings.ToLower(candidate), needle) {
					matches = append(matches, item)
					break
				}
			}
		}

		return map[string]any{
			"success":    true,
			"query":      query,
			"count":      len(matches),
			"meal_plans": matches,
		}, nil
	})
}

// MealplansDeleteRange deletes every entry in a date range. Failures
// are collected per entry so one bad delete doesn't abort the rest.
func MealplansDeleteRange(ctx context.Context, startDate, endDate string) string {
	return run(func(c *client.Client) (any, error) {
		response, err := c.ListMealplans(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}
		entries := listEntries(response)

		deleted := 0
		failures := make([]map[string]any, 0)
		for _, item := range entries {
			entry := client.AsObject(item)
			entryID := entry.Str("id")
			if entryID == "" {
				entryID = fmt.Sprintf("%v", entry["id"])
			}
			if _, err := c.DeleteMealplan(ctx, entryID); err != nil {
				failures = append(failures, map[string]any{
					"id":    entry["id"],
					"date":  entry["date"],
					"error": err.Error(),
				})
				continue
			}
			deleted++
		}

		return map[string]any{
			"success":    len(failures) == 0,
			"start_date": startDate,
			"end_date":   endDate,
			"total":      len(entries),
			"deleted":    deleted,
			"failed":     len(failures),
			"failures":   failures,
		}, nil
	})
}

// MealplanBatchUpdate is one entry in a MealplansUpdateBatch call.
type MealplanBatchUpdate struct {
	MealplanID string  `json:"mealplan_id"`
	MealDate   *string `json:"meal_date,omitempty"`
	EntryType  *string `json:"entry_type,omitempty"`
	RecipeID   *string `json:"recipe_id,omitempty"`
	Title      *string `json:"title,omitempty"`
	Text       *string `json:"text,omitempty"`
}

// MealplansUpdateBatch applies a list of entry updates, collecting
// per-entry failures instead of aborting.
func MealplansUpdateBatch(ctx context.Context, updates []MealplanBatchUpdate) string {
	return run(func(c *client.Client) (any, error) {
		updated := 0
		failures := make([]map[string]any, 0)
		entries := make([]any, 0, len(updates))

		for _, update := range updates {
			result := MealplansUpdate(ctx, update.MealplanID, update.MealDate, update.EntryType, update.RecipeID, update.Title, update.Text)
			parsed := parseToolResult(result)
			if errMsg, ok := parsed["error"]; ok {
				failures = append(failures, map[string]any{
					"mealplan_id": update.MealplanID,
					"error":       errMsg,
				})
				continue
			}
			updated++
			if entry, ok := parsed["entry"]; ok {
				entries = append(entries, entry)
			}
		}

		return map[string]any{
			"success":  len(failures) == 0,
			"total":    len(updates),
			"updated":  updated,
			"failed":   len(failures),
			"failures": failures,
			"entries":  entries,
		}, nil
	})
}

func MealplanRulesList(ctx context.Context) string {
	return run(func(c *client.Client) (any, error) {
		return c.ListMealplanRules(ctx)
	})
}

func MealplanRulesGet(ctx context.Context, ruleID string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetMealplanRule(ctx, ruleID)
	})
}

func MealplanRulesCreate(ctx context.Context, name, entryType, day string, tags, categories []string) string {
	if entryType != "" && !isValidEntryType(entryType) {
		return invalidEntryTypeError(entryType)
	}
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{
			"name": name,
		}
		if entryType != "" {
			payload["entryType"] = strings.ToLower(entryType)
		}
		if day != "" {
			payload["day"] = strings.ToLower(day)
		}
		if len(tags) > 0 {
			payload["tags"] = namedRefs(tags)
		}
		if len(categories) > 0 {
			payload["categories"] = namedRefs(categories)
		}

		rule, err := c.CreateMealplanRule(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan rule '%s' created", name),
			"rule":    rule,
		}, nil
	})
}

func MealplanRulesUpdate(ctx context.Context, ruleID string, name, entryType, day *string, tags, categories []string) string {
	if entryType != nil && !isValidEntryType(*entryType) {
		return invalidEntryTypeError(*entryType)
	}
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{}
		if name != nil {
			payload["name"] = *name
		}
		if entryType != nil {
			payload["entryType"] = strings.ToLower(*entryType)
		}
		if day != nil {
			payload["day"] = strings.ToLower(*day)
		}
		if tags != nil {
			payload["tags"] = namedRefs(tags)
		}
		if categories != nil {
			payload["categories"] = namedRefs(categories)
		}

		rule, err := c.UpdateMealplanRule(ctx, ruleID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan rule '%s' updated", ruleID),
			"rule":    rule,
		}, nil
	})
}

func MealplanRulesDelete(ctx context.Context, ruleID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteMealplanRule(ctx, ruleID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("Meal plan rule '%s' deleted", ruleID),
		}, nil
	})
}

func namedRefs(names []string) []map[string]any {
	refs := make([]map[string]any, 0, len(names))
	for _, name := range names {
		refs = append(refs, map[string]any{"name": name})
	}
	return refs
}
