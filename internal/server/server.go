// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"github.com/rs/zerolog/log"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

const Version = "1.0.0"

type Config struct {
	Transport string
	Host      string
	Port      int
}

type MealieServer struct {
	server     *server.Server
	httpServer *http.Server
	registry   map[string]toolHandler
	config     *Config
}

func NewMealieServer(cfg *Config) (*MealieServer, error) {
	mealieServer := &MealieServer{
		config:   cfg,
		registry: toolRegistry(),
	}

	// Create MCP server (without transport, we'll handle HTTP manually)
	mcpServer, err := server.NewServer(
		nil,
		server.WithServerInfo(protocol.Implementation{
			Name:    "mealie-mcp",
			Version: Version,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}
	mealieServer.server = mcpServer

	mux := http.NewServeMux()
	mux.HandleFunc("/", mealieServer.handleTools)
	mux.HandleFunc("/resources", mealieServer.handleResources)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mealieServer.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Debug().Int("tools", len(mealieServer.registry)).Msg("tool registry built")

	return mealieServer, nil
}

func (s *MealieServer) handleTools(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.registry[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(r.Context(), &request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Str("tool", request.Name).Msg("failed to encode response")
	}
}

// handleResources serves the markdown resources on GET /resources?uri=...
func (s *MealieServer) handleResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uri := r.URL.Query().Get("uri")
	if uri == "" {
		http.Error(w, "Missing uri parameter", http.StatusBadRequest)
		return
	}

	content, ok := renderResource(r.Context(), uri)
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown resource: %s", uri), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, content)
}

// renderResource maps a resource URI onto its markdown renderer.
func renderResource(ctx context.Context, uri string) (string, bool) {
	switch {
	case uri == "recipes://list":
		return tools.ResourceRecipesList(ctx), true
	case strings.HasPrefix(uri, "recipes://"):
		return tools.ResourceRecipeDetail(ctx, strings.TrimPrefix(uri, "recipes://")), true
	case uri == "mealplans://current":
		return tools.ResourceCurrentMealplan(ctx), true
	case uri == "mealplans://today":
		return tools.ResourceTodayMeals(ctx), true
	case strings.HasPrefix(uri, "mealplans://"):
		return tools.ResourceMealplanDate(ctx, strings.TrimPrefix(uri, "mealplans://")), true
	case uri == "shopping://lists":
		return tools.ResourceShoppingLists(ctx), true
	case strings.HasPrefix(uri, "shopping://"):
		return tools.ResourceShoppingListDetail(ctx, strings.TrimPrefix(uri, "shopping://")), true
	}
	return "", false
}

func (s *MealieServer) Start(ctx context.Context) error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("starting Mealie MCP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *MealieServer) Stop() error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}
