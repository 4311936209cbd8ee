package search

import (
	"property-portfolio/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// Client indexes properties in Meilisearch for the full-text search
// endpoint. A nil *Client is valid and turns every operation into a no-op,
// so the server can run without a search backend configured.
type Client struct {
	client *meilisearch.Client
	index  string
}

// NewClient creates a search client for the given Meilisearch instance
func NewClient(host, apiKey string) *Client {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &Client{
		client: client,
		index:  "properties",
	}
}

// Enabled reports whether a search backend is configured
func (c *Client) Enabled() bool {
	return c != nil
}

// InitIndex initializes the Meilisearch index
func (c *Client) InitIndex() error {
	if c == nil {
		return nil
	}

	_, err := c.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        c.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSearchableAttributes(&[]string{
		"name",
		"address",
		"codeInternal",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateFilterableAttributes(&[]string{
		"id",
		"price",
		"year",
		"ownerId",
	})
	if err != nil {
		return err
	}

	_, err = c.client.Index(c.index).UpdateSortableAttributes(&[]string{
		"price",
		"year",
	})
	return err
}

// IndexProperty adds or replaces a property document in the index
func (c *Client) IndexProperty(property *models.Property) error {
	if c == nil {
		return nil
	}
	_, err := c.client.Index(c.index).AddDocuments([]models.Property{*property})
	return err
}

// RemoveProperty deletes a property document from the index
func (c *Client) RemoveProperty(id string) error {
	if c == nil {
		return nil
	}
	_, err := c.client.Index(c.index).DeleteDocument(id)
	return err
}

// Search performs a full-text search over indexed properties
func (c *Client) Search(query string, limit int64) ([]models.Property, error) {
	if c == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	searchRes, err := c.client.Index(c.index).Search(query, &meilisearch.SearchRequest{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(searchRes.Hits))
	for _, hit := range searchRes.Hits {
		properties = append(properties, parsePropertyFromHit(hit))
	}
	return properties, nil
}

// parsePropertyFromHit converts a search hit to a Property
func parsePropertyFromHit(hit interface{}) models.Property {
	hitMap, ok := hit.(map[string]interface{})
	if !ok {
		return models.Property{}
	}

	property := models.Property{
		ID:           getString(hitMap, "id"),
		Name:         getString(hitMap, "name"),
		Address:      getString(hitMap, "address"),
		CodeInternal: getString(hitMap, "codeInternal"),
		OwnerID:      getString(hitMap, "ownerId"),
	}

	if price, ok := hitMap["price"].(float64); ok {
		property.Price = price
	}
	if year, ok := hitMap["year"].(float64); ok {
		property.Year = int(year)
	}

	return property
}

// getString safely extracts a string from map
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
