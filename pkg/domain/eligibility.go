package domain

// DeprecatedServers are integrations superseded upstream that are skipped
// by default: their replacements live in the registry under new names and
// activating both at once attaches duplicate clients.
func DeprecatedServers() ServerSet {
	return NewServerSet("typst_lsp", "ruff_lsp", "bufls", "sumneko_lua")
}

// ShouldSkip reports whether a server is ineligible for activation before
// any installation check, because the user excluded it or because it is
// deprecated.
func ShouldSkip(id ServerID, exclude, deprecated ServerSet) bool {
	return exclude.Contains(id) || deprecated.Contains(id)
}
