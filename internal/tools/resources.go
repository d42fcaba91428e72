// internal/tools/resources.go
//
// Markdown renderers backing the read-only resource URIs. Unlike the
// tool functions these return human-readable markdown rather than
// JSON, and errors come back as plain text.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

var mealTypeOrder = []string{"breakfast", "lunch", "dinner", "side", "snack"}

// ResourceRecipesList renders every recipe grouped by category.
// URI: recipes://list
func ResourceRecipesList(ctx context.Context) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching recipes: %v", err)
	}
	defer c.Close()

	allRecipes := make([]client.Object, 0)
	for page := 1; ; page++ {
		response, err := c.ListRecipes(ctx, page, 100, "", nil, nil, "name", "asc")
		if err != nil {
			return fmt.Sprintf("Error fetching recipes: %v", err)
		}
		listing, ok := response.(map[string]any)
		if !ok || !client.Object(listing).Has("items") {
			break
		}
		result := client.Object(listing)
		items := result.List("items")
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			allRecipes = append(allRecipes, client.AsObject(item))
		}
		if len(allRecipes) >= result.Int("total") {
			break
		}
	}

	byCategory := map[string][]client.Object{}
	uncategorized := make([]client.Object, 0)
	for _, recipe := range allRecipes {
		categories := recipe.List("recipeCategory")
		if len(categories) == 0 {
			uncategorized = append(uncategorized, recipe)
			continue
		}
		name := client.AsObject(categories[0]).StrOr("name", "Uncategorized")
		byCategory[name] = append(byCategory[name], recipe)
	}

	var out strings.Builder
	out.WriteString("# Recipes in Mealie\n\n")
	fmt.Fprintf(&out, "**Total Recipes**: %d\n\n", len(allRecipes))

	categoryNames := make([]string, 0, len(byCategory))
	for name := range byCategory {
		categoryNames = append(categoryNames, name)
	}
	sort.Strings(categoryNames)

	for _, name := range categoryNames {
		recipes := byCategory[name]
		fmt.Fprintf(&out, "## %s (%d recipes)\n\n", name, len(recipes))
		for _, recipe := range recipes {
			out.WriteString(recipeListLine(recipe))
		}
		out.WriteString("\n")
	}

	if len(uncategorized) > 0 {
		fmt.Fprintf(&out, "## Uncategorized (%d recipes)\n\n", len(uncategorized))
		for _, recipe := range uncategorized {
			out.WriteString(recipeListLine(recipe))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func recipeListLine(recipe client.Object) string {
	name := recipe.StrOr("name", "Unknown")
	slug := recipe.Str("slug")

	tagNames := make([]string, 0)
	for _, tag := range recipe.List("tags") {
		tagNames = append(tagNames, client.AsObject(tag).Str("name"))
	}
	tagSuffix := ""
	if len(tagNames) > 0 {
		tagSuffix = fmt.Sprintf(" [%s]", strings.Join(tagNames, ", "))
	}
	return fmt.Sprintf("- **%s** (`%s`)%s\n", name, slug, tagSuffix)
}

// ResourceRecipeDetail renders a full recipe with ingredients,
// instructions, and nutrition. URI: recipes://{slug}
func ResourceRecipeDetail(ctx context.Context, slug string) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching recipe '%s': %v", slug, err)
	}
	defer c.Close()

	raw, err := c.GetRecipe(ctx, slug)
	if err != nil {
		return fmt.Sprintf("Error fetching recipe '%s': %v", slug, err)
	}
	recipe, ok := raw.(map[string]any)
	if !ok || len(recipe) == 0 {
		return fmt.Sprintf("Recipe '%s' not found", slug)
	}
	r := client.Object(recipe)

	var out strings.Builder
	fmt.Fprintf(&out, "# %s\n\n", r.StrOr("name", "Unknown Recipe"))

	if description := r.Str("description"); description != "" {
		fmt.Fprintf(&out, "*%s*\n\n", description)
	}

	out.WriteString("## Information\n\n")
	if categories := r.List("recipeCategory"); len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, client.AsObject(category).Str("name"))
		}
		fmt.Fprintf(&out, "- **Category**: %s\n", strings.Join(names, ", "))
	}
	if tags := r.List("tags"); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, client.AsObject(tag).Str("name"))
		}
		fmt.Fprintf(&out, "- **Tags**: %s\n", strings.Join(names, ", "))
	}
	if v := r.Str("recipeYield"); v != "" {
		fmt.Fprintf(&out, "- **Yield**: %s\n", v)
	}
	if v := r.Str("totalTime"); v != "" {
		fmt.Fprintf(&out, "- **Total Time**: %s\n", v)
	}
	if v := r.Str("prepTime"); v != "" {
		fmt.Fprintf(&out, "- **Prep Time**: %s\n", v)
	}
	if v := r.Str("performTime"); v != "" {
		fmt.Fprintf(&out, "- **Cook Time**: %s\n", v)
	}
	out.WriteString("\n")

	if ingredients := r.List("recipeIngredient"); len(ingredients) > 0 {
		out.WriteString("## Ingredients\n\n")
		for _, raw := range ingredients {
			ingredient, ok := raw.(map[string]any)
			if !ok {
				fmt.Fprintf(&out, "- %v\n", raw)
				continue
			}
			i := client.Object(ingredient)
			parts := []string{}
			if i.Has("quantity") && i["quantity"] != nil {
				parts = append(parts, fmt.Sprintf("%v", i["quantity"]))
			}
			if unit := organizerName(i["unit"]); unit != nil && unit != "" {
				parts = append(parts, fmt.Sprintf("%v", unit))
			}
			if food := organizerName(i["food"]); food != nil && food != "" {
				parts = append(parts, fmt.Sprintf("%v", food))
			}
			line := "- " + strings.TrimSpace(strings.Join(parts, " "))
			if note := i.Str("note"); note != "" {
				if line == "- " {
					line = "- " + note
				} else {
					line += fmt.Sprintf(" (%s)", note)
				}
			}
			out.WriteString(line + "\n")
		}
		out.WriteString("\n")
	}

	if instructions := r.List("recipeInstructions"); len(instructions) > 0 {
		out.WriteString("## Instructions\n\n")
		for i, raw := range instructions {
			step, ok := raw.(map[string]any)
			if !ok {
				fmt.Fprintf(&out, "%d. %v\n\n", i+1, raw)
				continue
			}
			instruction := client.Object(step)
			if title := instruction.Str("title"); title != "" {
				fmt.Fprintf(&out, "### Step %d: %s\n\n", i+1, title)
			} else {
				fmt.Fprintf(&out, "### Step %d\n\n", i+1)
			}
			out.WriteString(instruction.Str("text") + "\n\n")
		}
	}

	if nutrition := r.Object("nutrition"); len(nutrition) > 0 {
		rows := []struct{ label, key string }{
			{"Calories", "calories"},
			{"Protein", "proteinContent"},
			{"Carbohydrates", "carbohydrateContent"},
			{"Fat", "fatContent"},
			{"Fiber", "fiberContent"},
			{"Sodium", "sodiumContent"},
		}
		var lines []string
		for _, row := range rows {
			if v := nutrition.Str(row.key); v != "" {
				lines = append(lines, fmt.Sprintf("- **%s**: %s", row.label, v))
			}
		}
		if len(lines) > 0 {
			out.WriteString("## Nutrition\n\n")
			out.WriteString(strings.Join(lines, "\n") + "\n\n")
		}
	}

	if notes := r.List("notes"); len(notes) > 0 {
		out.WriteString("## Notes\n\n")
		for _, raw := range notes {
			note, ok := raw.(map[string]any)
			if !ok {
				fmt.Fprintf(&out, "%v\n\n", raw)
				continue
			}
			n := client.Object(note)
			if title := n.Str("title"); title != "" {
				fmt.Fprintf(&out, "### %s\n\n", title)
			}
			out.WriteString(n.Str("text") + "\n\n")
		}
	}

	if recipeURL := r.Str("orgURL"); recipeURL != "" {
		out.WriteString("## Source\n\n")
		fmt.Fprintf(&out, "[Original Recipe](%s)\n\n", recipeURL)
	}

	return out.String()
}

// ResourceCurrentMealplan renders the current Monday-to-Sunday week
// with a TODAY marker. URI: mealplans://current
func ResourceCurrentMealplan(ctx context.Context) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching meal plan: %v", err)
	}
	defer c.Close()

	today := time.Now()
	weekday := int(today.Weekday())
	// time.Weekday starts at Sunday; shift so the week starts Monday.
	offset := (weekday + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)

	response, err := c.ListMealplans(ctx, weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
	if err != nil {
		return fmt.Sprintf("Error fetching meal plan: %v", err)
	}

	mealsByDate := map[string][]client.Object{}
	for _, item := range listEntries(response) {
		entry := client.AsObject(item)
		if day := entry.Str("date"); day != "" {
			mealsByDate[day] = append(mealsByDate[day], entry)
		}
	}

	var out strings.Builder
	out.WriteString("# Current Week's Meal Plan\n\n")
	fmt.Fprintf(&out, "**Week of %s - %s**\n\n",
		weekStart.Format("January 02, 2006"), weekEnd.Format("January 02, 2006"))

	todayStr := today.Format("2006-01-02")
	for day := weekStart; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
		dayStr := day.Format("2006-01-02")
		dayName := day.Format("Monday, January 02")

		if dayStr == todayStr {
			fmt.Fprintf(&out, "## %s **(TODAY)**\n\n", dayName)
		} else {
			fmt.Fprintf(&out, "## %s\n\n", dayName)
		}

		dayMeals := mealsByDate[dayStr]
		if len(dayMeals) == 0 {
			out.WriteString("*No meals planned*\n\n")
			continue
		}

		byType := groupMealsByType(dayMeals)
		for _, mealType := range orderedMealTypes(byType) {
			fmt.Fprintf(&out, "### %s\n\n", capitalize(mealType))
			for _, meal := range byType[mealType] {
				if recipe := meal.Object("recipe"); len(recipe) > 0 {
					fmt.Fprintf(&out, "- **%s** (`%s`)\n",
						recipe.StrOr("name", "Unknown"), recipe.Str("slug"))
				}
				if note := meal.Str("text"); note != "" {
					fmt.Fprintf(&out, "  - *Note: %s*\n", note)
				}
			}
			out.WriteString("\n")
		}
	}

	return out.String()
}

func groupMealsByType(meals []client.Object) map[string][]client.Object {
	byType := map[string][]client.Object{}
	for _, meal := range meals {
		entryType := strings.ToLower(meal.StrOr("entryType", "meal"))
		byType[entryType] = append(byType[entryType], meal)
	}
	return byType
}

// orderedMealTypes returns the standard meal order first, then any
// other entry types sorted by name.
func orderedMealTypes(byType map[string][]client.Object) []string {
	ordered := make([]string, 0, len(byType))
	seen := map[string]bool{}
	for _, mealType := range mealTypeOrder {
		if _, ok := byType[mealType]; ok {
			ordered = append(ordered, mealType)
			seen[mealType] = true
		}
	}
	others := make([]string, 0)
	for mealType := range byType {
		if !seen[mealType] {
			others = append(others, mealType)
		}
	}
	sort.Strings(others)
	return append(ordered, others...)
}

// ResourceTodayMeals renders today's planned meals with timing
// details. URI: mealplans://today
func ResourceTodayMeals(ctx context.Context) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching today's meals: %v", err)
	}
	defer c.Close()

	response, err := c.GetTodaysMealplans(ctx)
	if err != nil {
		return fmt.Sprintf("Error fetching today's meals: %v", err)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "# Meals for %s\n\n", time.Now().Format("Monday, January 02, 2006"))

	entries := listEntries(response)
	if len(entries) == 0 {
		out.WriteString("*No meals planned for today*")
		return out.String()
	}

	meals := make([]client.Object, 0, len(entries))
	for _, item := range entries {
		meals = append(meals, client.AsObject(item))
	}
	byType := groupMealsByType(meals)

	for _, mealType := range orderedMealTypes(byType) {
		fmt.Fprintf(&out, "## %s\n\n", capitalize(mealType))
		for _, meal := range byType[mealType] {
			if recipe := meal.Object("recipe"); len(recipe) > 0 {
				fmt.Fprintf(&out, "### %s\n\n", recipe.StrOr("name", "Unknown"))
				if description := recipe.Str("description"); description != "" {
					fmt.Fprintf(&out, "*%s*\n\n", description)
				}

				prepTime := recipe.Str("prepTime")
				cookTime := recipe.Str("performTime")
				totalTime := recipe.Str("totalTime")
				if prepTime != "" || cookTime != "" || totalTime != "" {
					out.WriteString("**Timing:**\n")
					if prepTime != "" {
						fmt.Fprintf(&out, "- Prep: %s\n", prepTime)
					}
					if cookTime != "" {
						fmt.Fprintf(&out, "- Cook: %s\n", cookTime)
					}
					if totalTime != "" {
						fmt.Fprintf(&out, "- Total: %s\n", totalTime)
					}
					out.WriteString("\n")
				}
				fmt.Fprintf(&out, "*Recipe slug: `%s`*\n", recipe.Str("slug"))
			}
			if note := meal.Str("text"); note != "" {
				fmt.Fprintf(&out, "**Note:** %s\n", note)
			}
			out.WriteString("\n")
		}
	}

	return out.String()
}

// ResourceMealplanDate renders the meals planned for one date.
// URI: mealplans://{date}
func ResourceMealplanDate(ctx context.Context, mealDate string) string {
	data := parseToolResult(MealplansGetByDate(ctx, mealDate))
	if errMsg, ok := data["error"]; ok {
		return fmt.Sprintf("Error: %v", errMsg)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "# Meals for %v\n\n", data["date"])

	count, _ := data["count"].(float64)
	if count == 0 {
		out.WriteString("*No meals planned for this date*")
		return out.String()
	}

	meals, _ := data["meals"].(map[string]any)
	for _, mealType := range mealTypeOrder {
		group, ok := meals[mealType].([]any)
		if !ok || len(group) == 0 {
			continue
		}
		fmt.Fprintf(&out, "## %s\n\n", capitalize(mealType))
		for _, raw := range group {
			meal := client.AsObject(raw)
			name := meal.Str("recipe_name")
			if name == "" {
				name = meal.StrOr("title", "Untitled")
			}
			line := fmt.Sprintf("- **%s**", name)
			if slug := meal.Str("recipe_slug"); slug != "" {
				line += fmt.Sprintf(" (`%s`)", slug)
			}
			out.WriteString(line + "\n")
			if note := meal.Str("text"); note != "" {
				fmt.Fprintf(&out, "  - *Note: %s*\n", note)
			}
		}
		out.WriteString("\n")
	}

	return out.String()
}

// ResourceShoppingLists renders every shopping list with to-buy and
// purchased sections. URI: shopping://lists
func ResourceShoppingLists(ctx context.Context) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching shopping lists: %v", err)
	}
	defer c.Close()

	response, err := c.ListShoppingLists(ctx)
	if err != nil {
		return fmt.Sprintf("Error fetching shopping lists: %v", err)
	}

	var out strings.Builder
	out.WriteString("# Shopping Lists\n\n")

	lists := listEntries(response)
	if len(lists) == 0 {
		out.WriteString("*No shopping lists found*")
		return out.String()
	}

	fmt.Fprintf(&out, "**Total Lists**: %d\n\n", len(lists))

	for _, raw := range lists {
		list := client.AsObject(raw)
		fmt.Fprintf(&out, "## %s\n\n", list.StrOr("name", "Unnamed List"))

		if createdAt := list.Str("createdAt"); createdAt != "" {
			fmt.Fprintf(&out, "- **Created**: %s\n", createdAt)
		}
		if updatedAt := list.Str("updateAt"); updatedAt != "" {
			fmt.Fprintf(&out, "- **Last Updated**: %s\n", updatedAt)
		}

		items := list.List("listItems")
		if len(items) == 0 {
			out.WriteString("- **Total Items**: 0\n\n*No items in this list*\n\n")
			continue
		}

		checked := 0
		for _, entry := range items {
			if client.AsObject(entry).Bool("checked") {
				checked++
			}
		}
		fmt.Fprintf(&out, "- **Total Items**: %d\n", len(items))
		fmt.Fprintf(&out, "- **Completed**: %d/%d\n\n", checked, len(items))

		writeItemSections(&out, items, checked, "### To Buy", "### Already Purchased")
	}

	return out.String()
}

// ResourceShoppingListDetail renders one list with checkbox items.
// URI: shopping://{list_id}
func ResourceShoppingListDetail(ctx context.Context, listID string) string {
	c, err := client.New()
	if err != nil {
		return fmt.Sprintf("Error fetching shopping list '%s': %v", listID, err)
	}
	defer c.Close()

	raw, err := c.GetShoppingList(ctx, listID)
	if err != nil {
		return fmt.Sprintf("Error fetching shopping list '%s': %v", listID, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok || len(obj) == 0 {
		return fmt.Sprintf("Shopping list '%s' not found", listID)
	}
	list := client.Object(obj)

	var out strings.Builder
	fmt.Fprintf(&out, "# %s\n\n", list.StrOr("name", "Unnamed List"))

	if createdAt := list.Str("createdAt"); createdAt != "" {
		fmt.Fprintf(&out, "**Created**: %s\n", createdAt)
	}
	if updatedAt := list.Str("updateAt"); updatedAt != "" {
		fmt.Fprintf(&out, "**Last Updated**: %s\n", updatedAt)
	}
	out.WriteString("\n")

	items := list.List("listItems")
	if len(items) == 0 {
		out.WriteString("*No items in this list*\n")
		return out.String()
	}

	checked := 0
	for _, entry := range items {
		if client.AsObject(entry).Bool("checked") {
			checked++
		}
	}
	fmt.Fprintf(&out, "**Progress**: %d/%d items completed\n\n", checked, len(items))

	writeItemSections(&out, items, checked, "## To Buy", "## Already Purchased")

	return out.String()
}

func writeItemSections(out *strings.Builder, items []any, checkedCount int, toBuyHeader, purchasedHeader string) {
	if len(items)-checkedCount > 0 {
		out.WriteString(toBuyHeader + "\n\n")
		for _, entry := range items {
			item := client.AsObject(entry)
			if !item.Bool("checked") {
				writeShoppingItem(out, item, "- [ ] ")
			}
		}
		out.WriteString("\n")
	}
	if checkedCount > 0 {
		out.WriteString(purchasedHeader + "\n\n")
		for _, entry := range items {
			item := client.AsObject(entry)
			if item.Bool("checked") {
				writeShoppingItem(out, item, "- [x] ")
			}
		}
		out.WriteString("\n")
	}
}

func writeShoppingItem(out *strings.Builder, item client.Object, prefix string) {
	text := item.Str("display")
	if text == "" {
		parts := []string{}
		if item.Has("quantity") && item["quantity"] != nil {
			if quantity := item.Float("quantity"); quantity != 0 {
				parts = append(parts, fmt.Sprintf("%v", item["quantity"]))
			}
		}
		if unit := organizerName(item["unit"]); unit != nil && unit != "" {
			parts = append(parts, fmt.Sprintf("%v", unit))
		}
		if food := organizerName(item["food"]); food != nil && food != "" {
			parts = append(parts, fmt.Sprintf("%v", food))
		}
		if len(parts) > 0 {
			text = strings.Join(parts, " ")
		} else {
			text = "Unknown item"
		}
	}
	out.WriteString(prefix + text + "\n")
	if note := item.Str("note"); note != "" {
		fmt.Fprintf(out, "  - *%s*\n", note)
	}
}
