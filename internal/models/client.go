// internal/models/client.go
package models

// Client is one row of the third-party client feed proxied for the
// storefront's PDF export.
type Client struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Sector  string `json:"sector"`
	Phone   string `json:"phone"`
}
