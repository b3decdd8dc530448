package entity

// BalanceView is the read model handed to presentation layers.
// Exists is false when the account was never created and Points is then 0.
type BalanceView struct {
	DiscordID int64 `json:"discordId"`
	Points    int64 `json:"points"`
	Exists    bool  `json:"exists"`
}

// AccountToBalanceView converts an Account entity to a BalanceView
// This is a separate function rather than a method on Account to keep domain models clean
func AccountToBalanceView(account *Account) BalanceView {
	return BalanceView{
		DiscordID: account.DiscordID,
		Points:    account.Points(),
		Exists:    true,
	}
}

// EmptyBalanceView returns the zero-balance view shown for unknown accounts
func EmptyBalanceView(discordID int64) BalanceView {
	return BalanceView{
		DiscordID: discordID,
		Points:    0,
		Exists:    false,
	}
}
