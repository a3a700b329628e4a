/*
Package cash implements a fungible ledger of multi-currency wallets.

Each address owns a wallet. Coins are moved between wallets by the
SendMsg handler or by other extensions through the Controller, which is
how kitty purchases are settled. A configured minimum balance keeps the
paying wallet alive and requires the receiving wallet to hold at least
that amount after the transfer.
*/
package cash
