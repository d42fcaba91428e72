// internal/tools/foods.go
package tools

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

func normalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 50
	}
	return page, perPage
}

func FoodsList(ctx context.Context, page, perPage int) string {
	page, perPage = normalizePage(page, perPage)
	return run(func(c *client.Client) (any, error) {
		return c.ListFoods(ctx, page, perPage)
	})
}

func FoodsGet(ctx context.Context, foodID string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetFood(ctx, foodID)
	})
}

func FoodsCreate(ctx context.Context, name, description, labelID string) string {
	return run(func(c *client.Client) (any, error) {
		food, err := c.CreateFood(ctx, name, description, labelID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Food created successfully",
			"food":    food,
		}, nil
	})
}

// FoodsUpdate fetches the stored food and replaces it with the merged
// record; the endpoint expects a complete PUT body.
func FoodsUpdate(ctx context.Context, foodID string, name, description, labelID *string) string {
	return run(func(c *client.Client) (any, error) {
		raw, err := c.GetFood(ctx, foodID)
		if err != nil {
			return nil, err
		}
		existing := client.AsObject(raw)

		payload := map[string]any{
			"id":   foodID,
			"name": existing["name"],
		}
		if existing.Has("description") {
			payload["description"] = existing["description"]
		}
		if existing.Has("labelId") {
			payload["labelId"] = existing["labelId"]
		}
		if name != nil {
			payload["name"] = *name
		}
		if description != nil {
			payload["description"] = *description
		}
		if labelID != nil {
			payload["labelId"] = *labelID
		}

		food, err := c.UpdateFood(ctx, foodID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Food updated successfully",
			"food":    food,
		}, nil
	})
}

func FoodsDelete(ctx context.Context, foodID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteFood(ctx, foodID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Food deleted successfully",
		}, nil
	})
}

// FoodsMerge folds every reference to fromFoodID into toFoodID and
// deletes the source food.
func FoodsMerge(ctx context.Context, fromFoodID, toFoodID string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.MergeFoods(ctx, fromFoodID, toFoodID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Foods merged successfully",
			"result":  result,
		}, nil
	})
}

func UnitsList(ctx context.Context, page, perPage int) string {
	page, perPage = normalizePage(page, perPage)
	return run(func(c *client.Client) (any, error) {
		return c.ListUnits(ctx, page, perPage)
	})
}

func UnitsGet(ctx context.Context, unitID string) string {
	return run(func(c *client.Client) (any, error) {
		return c.GetUnit(ctx, unitID)
	})
}

func UnitsCreate(ctx context.Context, name, description, abbreviation string) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{"name": name}
		if description != "" {
			payload["description"] = description
		}
		if abbreviation != "" {
			payload["abbreviation"] = abbreviation
		}

		unit, err := c.CreateUnit(ctx, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Unit created successfully",
			"unit":    unit,
		}, nil
	})
}

func UnitsUpdate(ctx context.Context, unitID string, name, description, abbreviation *string) string {
	return run(func(c *client.Client) (any, error) {
		payload := map[string]any{"id": unitID}
		if name != nil {
			payload["name"] = *name
		}
		if description != nil {
			payload["description"] = *description
		}
		if abbreviation != nil {
			payload["abbreviation"] = *abbreviation
		}

		unit, err := c.UpdateUnit(ctx, unitID, payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Unit updated successfully",
			"unit":    unit,
		}, nil
	})
}

func UnitsDelete(ctx context.Context, unitID string) string {
	return run(func(c *client.Client) (any, error) {
		if _, err := c.DeleteUnit(ctx, unitID); err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Unit deleted successfully",
		}, nil
	})
}

func UnitsMerge(ctx context.Context, fromUnitID, toUnitID string) string {
	return run(func(c *client.Client) (any, error) {
		result, err := c.MergeUnits(ctx, fromUnitID, toUnitID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"message": "Units merged successfully",
			"result":  result,
		}, nil
	})
}
