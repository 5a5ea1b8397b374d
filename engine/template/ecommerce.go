package template

import (
	"context"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/knowledge"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const (
	ProductSearch  category.Category = "product_search"
	OrderTracking  category.Category = "order_tracking"
	ReturnRefund   category.Category = "return_refund"
	Recommendation category.Category = "recommendation"
)

func Ecommerce() *Template {
	set := category.NewSet(ProductSearch, OrderTracking, ReturnRefund, Recommendation)
	return &Template{
		Name:         "ecommerce",
		Title:        "AI E-commerce Assistant",
		Prompt:       "Customer",
		ClassifyTask: "classify_inquiry",
		Normalizer: category.NewNormalizer(set, ProductSearch,
			category.Rule{Category: ProductSearch, Match: category.Either(
				category.Contains("product_search"), category.AllOf("product", "search"),
			)},
			category.Rule{Category: OrderTracking, Match: category.Either(
				category.Contains("order_tracking"), category.AllOf("order", "track"),
			)},
			category.Rule{Category: ReturnRefund, Match: category.AnyOf("return_refund", "return", "refund")},
			category.Rule{Category: Recommendation, Match: category.AnyOf("recommendation", "recommend")},
		),
		Routes: map[category.Category]Route{
			ProductSearch:  {Task: "search_products", Agent: "product_search"},
			OrderTracking:  {Task: "track_order", Agent: "order_tracker"},
			ReturnRefund:   {Task: "process_return", Agent: "return_handler"},
			Recommendation: {Task: "recommend_products", Agent: "recommender"},
		},
		Bindings: map[string][]string{
			"product_search": {"search_product_catalog"},
			"order_tracker":  {"lookup_order"},
			"return_handler": {"search_product_catalog"},
			"recommender":    {"search_product_catalog"},
		},
		Tools: ecommerceTools,
	}
}

func ecommerceTools(ctx context.Context, env *ToolEnv) ([]tool.Tool, error) {
	return collect(
		ready(searchTool(env, knowledge.SearchConfig{
			Name:        "search_product_catalog",
			Description: "Search the product catalog by product name, category, feature, or price range.",
			Marker:      h3Marker,
			MaxResults:  5,
			MaxRunes:    500,
			NotFound:    "No products found matching: %s",
		})),
		func() (tool.Tool, error) {
			return lookupTool(ctx, env, "orders", record.LookupConfig{
				Name:        "lookup_order",
				Description: "Look up order status and shipping information by order ID (e.g., ORD-12345).",
				Argument:    "order_id",
				Entity:      "Order",
				Plural:      "orders",
				Key:         record.UpperKey,
			})
		},
	)
}
