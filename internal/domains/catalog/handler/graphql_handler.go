package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

// GraphQLHandler executes GraphQL documents against the library schema.
type GraphQLHandler struct {
	schema     *graphql.Schema
	playground bool
}

func NewGraphQLHandler(schema *graphql.Schema, playground bool) *GraphQLHandler {
	return &GraphQLHandler{
		schema:     schema,
		playground: playground,
	}
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ════════════════════════════════════════════════════════════════
// POST /graphql
// ════════════════════════════════════════════════════════════════

func (h *GraphQLHandler) Post(c *gin.Context) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid GraphQL request body: "+err.Error())
		return
	}

	h.execute(c, req)
}

// ════════════════════════════════════════════════════════════════
// GET /graphql?query=...&operationName=...&variables=...
// ════════════════════════════════════════════════════════════════

func (h *GraphQLHandler) Get(c *gin.Context) {
	req := graphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}

	if req.Query == "" && h.playground {
		c.Data(http.StatusOK, "text/html; charset=utf-8", playgroundPage(c.Request.URL.Path))
		return
	}

	if raw := c.Query("variables"); raw != "" {
		if err := jsoniter.UnmarshalFromString(raw, &req.Variables); err != nil {
			response.BadRequest(c, "Invalid variables: "+err.Error())
			return
		}
	}

	h.execute(c, req)
}

func (h *GraphQLHandler) execute(c *gin.Context, req graphQLRequest) {
	if req.Query == "" {
		response.BadRequest(c, "Missing GraphQL query")
		return
	}

	ctx := c.Request.Context()
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	if len(resp.Errors) > 0 {
		log.Ctx(ctx).Warn().
			Str("operation", req.OperationName).
			Int("errors", len(resp.Errors)).
			Str("first_error", resp.Errors[0].Message).
			Msg("GraphQL request returned errors")
	}

	c.JSON(http.StatusOK, resp)
}
