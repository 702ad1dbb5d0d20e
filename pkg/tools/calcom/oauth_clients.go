package calcom

import (
	"context"

	cal "github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/tools"
)

const oauthSecretWarning = "OAuth client created successfully!\n\n" +
	"⚠️ IMPORTANT: Save these credentials securely - the secret cannot be retrieved later!\n\n"

func permissionNames() []string {
	names := make([]string, len(cal.OAuthPermissions))
	for i, p := range cal.OAuthPermissions {
		names[i] = string(p)
	}
	return names
}

// oauthClientSettings are the optional fields shared by create and update
func oauthClientSettings(props map[string]interface{}) map[string]interface{} {
	settings := map[string]interface{}{
		"logo":                         tools.Format("URL to the client application logo", "uri"),
		"bookingRedirectUri":           tools.Format("Redirect URI after successful booking", "uri"),
		"bookingCancelRedirectUri":     tools.Format("Redirect URI after booking cancellation", "uri"),
		"bookingRescheduleRedirectUri": tools.Format("Redirect URI after booking reschedule", "uri"),
		"areEmailsEnabled":             tools.Boolean("Enable email notifications for the OAuth client"),
		"areDefaultEventTypesEnabled":  tools.Boolean("If true, managed users will have 4 default event types created automatically"),
		"areCalendarEventsEnabled":     tools.Boolean("If true and managed user has calendar connected, calendar events will be created"),
	}
	for k, v := range props {
		settings[k] = v
	}
	return settings
}

type oauthClientArgs struct {
	ClientID string `json:"clientId"`
}

type updateOAuthClientArgs struct {
	ClientID string `json:"clientId"`
	cal.UpdateOAuthClientRequest
}

func oauthClientTools() []*Tool {
	return []*Tool{
		{
			name:        "list_oauth_clients",
			description: "Get all OAuth clients for the authenticated organization. Returns a list of all OAuth clients with their IDs, names, permissions, and configuration.",
			schema:      tools.Object(map[string]interface{}{}),
			run: func(ctx context.Context, api API, _ map[string]interface{}) (*tools.Result, error) {
				return render(api.ListOAuthClients(ctx)), nil
			},
		},
		{
			name:        "get_oauth_client",
			description: "Get details of a specific OAuth client by ID. Returns full client information including permissions, redirect URIs, and settings.",
			schema: tools.Object(map[string]interface{}{
				"clientId": tools.NonEmptyString("The unique identifier of the OAuth client"),
			}, "clientId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[oauthClientArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.GetOAuthClient(ctx, a.ClientID)), nil
			},
		},
		{
			name:        "create_oauth_client",
			description: "Create a new OAuth client for Cal.com integration. Returns the client ID and secret (save the secret securely - it cannot be retrieved later).",
			schema: tools.Object(oauthClientSettings(map[string]interface{}{
				"name": tools.NonEmptyString("Name of the OAuth client application"),
				"redirectUris": tools.NonEmptyArray(
					"Array of valid redirect URIs for OAuth callbacks (must be valid URLs)",
					tools.Format("Redirect URI", "uri"),
				),
				"permissions": tools.NonEmptyArray(
					`Array of permission scopes. Use "*" for all permissions.`,
					tools.Enum("Permission scope", permissionNames()...),
				),
			}), "name", "redirectUris", "permissions"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				req, err := decodeInto[cal.CreateOAuthClientRequest](args)
				if err != nil {
					return nil, err
				}
				result := render(api.CreateOAuthClient(ctx, req))
				if result.Success {
					result.Output = oauthSecretWarning + result.Output
				}
				return result, nil
			},
		},
		{
			name:        "update_oauth_client",
			description: "Update an existing OAuth client. You can update the name, redirect URIs, and various settings. Permissions cannot be changed after creation.",
			schema: tools.Object(oauthClientSettings(map[string]interface{}{
				"clientId":     tools.NonEmptyString("The unique identifier of the OAuth client to update"),
				"name":         tools.NonEmptyString("New name for the OAuth client"),
				"redirectUris": tools.Array("New array of redirect URIs (replaces existing)", tools.Format("Redirect URI", "uri")),
			}), "clientId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[updateOAuthClientArgs](args)
				if err != nil {
					return nil, err
				}
				return render(api.UpdateOAuthClient(ctx, a.ClientID, a.UpdateOAuthClientRequest)), nil
			},
		},
		{
			name:        "delete_oauth_client",
			description: "Delete an OAuth client by ID. This action is irreversible and will invalidate all tokens issued to this client.",
			schema: tools.Object(map[string]interface{}{
				"clientId": tools.NonEmptyString("The unique identifier of the OAuth client to delete"),
			}, "clientId"),
			run: func(ctx context.Context, api API, args map[string]interface{}) (*tools.Result, error) {
				a, err := decodeInto[oauthClientArgs](args)
				if err != nil {
					return nil, err
				}
				return deleted(api.DeleteOAuthClient(ctx, a.ClientID), "OAuth client deleted successfully"), nil
			},
		},
	}
}
