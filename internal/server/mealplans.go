// internal/server/mealplans.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type mealplansListParams struct {
	StartDate string `json:"start_date,omitempty" description:"Start date YYYY-MM-DD (defaults to today)"`
	EndDate   string `json:"end_date,omitempty" description:"End date YYYY-MM-DD (defaults to start plus 7 days)"`
}

type mealplansGetParams struct {
	MealplanID string `json:"mealplan_id" description:"Meal plan entry ID"`
}

type mealplansGetDateParams struct {
	MealDate string `json:"meal_date" description:"Date YYYY-MM-DD"`
}

type mealplansCreateParams struct {
	MealDate  string `json:"meal_date" description:"Date YYYY-MM-DD"`
	EntryType string `json:"entry_type" description:"One of breakfast, lunch, dinner, side, snack"`
	RecipeID  string `json:"recipe_id,omitempty" description:"Recipe ID to plan"`
	Title     string `json:"title,omitempty" description:"Free-text title for note-only entries"`
	Text      string `json:"text,omitempty" description:"Free-text note"`
}

type mealplansUpdateParams struct {
	MealplanID string  `json:"mealplan_id" description:"Meal plan entry ID"`
	MealDate   *string `json:"meal_date,omitempty" description:"New date YYYY-MM-DD"`
	EntryType  *string `json:"entry_type,omitempty" description:"New entry type"`
	RecipeID   *string `json:"recipe_id,omitempty" description:"New recipe ID, or __CLEAR__ to remove"`
	Title      *string `json:"title,omitempty" description:"New title, or __CLEAR__ to remove"`
	Text       *string `json:"text,omitempty" description:"New note, or __CLEAR__ to remove"`
}

type mealplansSearchParams struct {
	Query     string `json:"query" description:"Substring to match against recipe names, titles, and notes"`
	StartDate string `json:"start_date,omitempty" description:"Start date YYYY-MM-DD (defaults to today)"`
	EndDate   string `json:"end_date,omitempty" description:"End date YYYY-MM-DD (defaults to start plus 30 days)"`
}

type mealplansDeleteRangeParams struct {
	StartDate string `json:"start_date" description:"Start date YYYY-MM-DD"`
	EndDate   string `json:"end_date" description:"End date YYYY-MM-DD"`
}

type mealplansUpdateBatchParams struct {
	Updates []tools.MealplanBatchUpdate `json:"updates" description:"Entries to update, each with mealplan_id plus the fields to change"`
}

type mealplanRulesGetParams struct {
	RuleID string `json:"rule_id" description:"Meal plan rule ID"`
}

type mealplanRulesCreateParams struct {
	Name       string   `json:"name" description:"Rule name"`
	EntryType  string   `json:"entry_type,omitempty" description:"Meal type the rule applies to"`
	Day        string   `json:"day,omitempty" description:"Day of week the rule applies to"`
	Tags       []string `json:"tags,omitempty" description:"Tag names to constrain recipe selection"`
	Categories []string `json:"categories,omitempty" description:"Category names to constrain recipe selection"`
}

type mealplanRulesUpdateParams struct {
	RuleID     string   `json:"rule_id" description:"Meal plan rule ID"`
	Name       *string  `json:"name,omitempty" description:"New rule name"`
	EntryType  *string  `json:"entry_type,omitempty" description:"New meal type"`
	Day        *string  `json:"day,omitempty" description:"New day of week"`
	Tags       []string `json:"tags,omitempty" description:"Replacement tag names"`
	Categories []string `json:"categories,omitempty" description:"Replacement category names"`
}

func mealplanToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_mealplans_list": tool(func(ctx context.Context, p mealplansListParams) string {
			return tools.MealplansList(ctx, p.StartDate, p.EndDate)
		}),
		"mealie_mealplans_today": tool(func(ctx context.Context, _ pingParams) string {
			return tools.MealplansToday(ctx)
		}),
		"mealie_mealplans_get": tool(func(ctx context.Context, p mealplansGetParams) string {
			return tools.MealplansGet(ctx, p.MealplanID)
		}),
		"mealie_mealplans_get_date": tool(func(ctx context.Context, p mealplansGetDateParams) string {
			return tools.MealplansGetByDate(ctx, p.MealDate)
		}),
		"mealie_mealplans_create": tool(func(ctx context.Context, p mealplansCreateParams) string {
			return tools.MealplansCreate(ctx, p.MealDate, p.EntryType, p.RecipeID, p.Title, p.Text)
		}),
		"mealie_mealplans_update": tool(func(ctx context.Context, p mealplansUpdateParams) string {
			return tools.MealplansUpdate(ctx, p.MealplanID, p.MealDate, p.EntryType, p.RecipeID, p.Title, p.Text)
		}),
		"mealie_mealplans_delete": tool(func(ctx context.Context, p mealplansGetParams) string {
			return tools.MealplansDelete(ctx, p.MealplanID)
		}),
		"mealie_mealplans_random": tool(func(ctx context.Context, _ pingParams) string {
			return tools.MealplansRandom(ctx)
		}),
		"mealie_mealplans_search": tool(func(ctx context.Context, p mealplansSearchParams) string {
			return tools.MealplansSearch(ctx, p.Query, p.StartDate, p.EndDate)
		}),
		"mealie_mealplans_delete_range": tool(func(ctx context.Context, p mealplansDeleteRangeParams) string {
			return tools.MealplansDeleteRange(ctx, p.StartDate, p.EndDate)
		}),
		"mealie_mealplans_update_batch": tool(func(ctx context.Context, p mealplansUpdateBatchParams) string {
			return tools.MealplansUpdateBatch(ctx, p.Updates)
		}),
		"mealie_mealplan_rules_list": tool(func(ctx context.Context, _ pingParams) string {
			return tools.MealplanRulesList(ctx)
		}),
		"mealie_mealplan_rules_get": tool(func(ctx context.Context, p mealplanRulesGetParams) string {
			return tools.MealplanRulesGet(ctx, p.RuleID)
		}),
		"mealie_mealplan_rules_create": tool(func(ctx context.Context, p mealplanRulesCreateParams) string {
			return tools.MealplanRulesCreate(ctx, p.Name, p.EntryType, p.Day, p.Tags, p.Categories)
		}),
		"mealie_mealplan_rules_update": tool(func(ctx context.Context, p mealplanRulesUpdateParams) string {
			return tools.MealplanRulesUpdate(ctx, p.RuleID, p.Name, p.EntryType, p.Day, p.Tags, p.Categories)
		}),
		"mealie_mealplan_rules_delete": tool(func(ctx context.Context, p mealplanRulesGetParams) string {
			return tools.MealplanRulesDelete(ctx, p.RuleID)
		}),
	}
}
