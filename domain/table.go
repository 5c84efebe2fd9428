package domain

// Table is a mongo collection name
type Table string

const (
	TableAuctions          Table = "auctions"
	TableAuctionActivities Table = "auction_activities"
	TableCustodySlots      Table = "custody_slots"
	TableLedgerBalances    Table = "ledger_balances"
	TableLedgerJournal     Table = "ledger_journal"
	TableAuthNonces        Table = "auth_nonces"
)
