// Command auction-clear clears a VCG sealed-bid auction described by a JSON
// instance and prints the winning allocation and payments.
//
// The instance holds the supply, optional per-bidder reserve prices, and the
// bids. Bids sharing a non-empty "group" are mutually exclusive: at most one
// of them can win. Monetary values are decimal strings.
//
//	{
//	  "supply": {"chair": 2},
//	  "reserve_prices": {"bob": "1.00"},
//	  "bids": [
//	    {"bidder": "alice", "value": "5", "bundle": {"chair": 1}, "group": "alice"},
//	    {"bidder": "alice", "value": "7", "bundle": {"chair": 2}, "group": "alice"},
//	    {"bidder": "bob", "value": "4", "bundle": {"chair": 1}}
//	  ]
//	}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daylightwarbler/vcg-auction/core"
	"github.com/daylightwarbler/vcg-auction/types"
)

type auctionInstance struct {
	Supply        map[string]uint64 `json:"supply"`
	ReservePrices map[string]string `json:"reserve_prices,omitempty"`
	Bids          []instanceBid     `json:"bids"`
}

type instanceBid struct {
	Bidder string            `json:"bidder"`
	Value  string            `json:"value"`
	Bundle map[string]uint64 `json:"bundle"`
	Group  string            `json:"group,omitempty"`
}

type clearingOutput struct {
	RunID           string          `json:"run_id"`
	Winners         []winnerOutput  `json:"winners"`
	Payments        []paymentOutput `json:"payments"`
	Welfare         string          `json:"welfare"`
	ReserveRejected []winnerOutput  `json:"reserve_rejected,omitempty"`
	ResultHash      string          `json:"result_hash"`
}

type winnerOutput struct {
	Bidder string            `json:"bidder"`
	Value  string            `json:"value"`
	Bundle map[string]uint64 `json:"bundle"`
}

type paymentOutput struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

func main() {
	var (
		input          = flag.String("input", "", "Auction instance JSON (file path or inline JSON)")
		outputFormat   = flag.String("format", "text", "Output format: text or json")
		randomTieBreak = flag.Bool("random-tiebreak", false, "Break welfare ties uniformly at random instead of first-discovered")
		help           = flag.Bool("help", false, "Show usage information")
	)

	flag.Parse()

	if *help {
		showUsage()
		os.Exit(0)
	}

	if *input == "" {
		showUsage()
		fmt.Fprintf(os.Stderr, "\nError: --input is required\n")
		os.Exit(1)
	}

	instance, err := readInstance(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading auction instance: %v\n", err)
		os.Exit(2)
	}

	output, err := clearInstance(instance, *randomTieBreak)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Clearing error: %v\n", err)
		os.Exit(2)
	}

	if *outputFormat == "json" {
		outputJSON(output)
	} else {
		outputText(output)
	}
}

// readInstance loads the instance from a file path, or parses the argument
// as inline JSON when no such file exists.
func readInstance(input string) (*auctionInstance, error) {
	data := []byte(input)
	if _, err := os.Stat(input); err == nil {
		data, err = os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", input, err)
		}
	}

	var instance auctionInstance
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("parsing auction instance: %w", err)
	}
	if len(instance.Supply) == 0 {
		return nil, fmt.Errorf("auction instance has no supply")
	}
	return &instance, nil
}

// groupedBid carries the instance's exclusivity group alongside the bid so
// the association survives reserve filtering.
type groupedBid struct {
	types.DecimalBid
	group string
}

func clearInstance(instance *auctionInstance, randomTieBreak bool) (*clearingOutput, error) {
	runID := uuid.NewString()
	log.Printf("INFO: Clearing auction run %s with %d bids over %d goods",
		runID, len(instance.Bids), len(instance.Supply))

	bids := make([]core.Bid[string, string, decimal.Decimal], 0, len(instance.Bids))
	for _, ib := range instance.Bids {
		value, err := decimal.NewFromString(ib.Value)
		if err != nil {
			return nil, fmt.Errorf("bid by %s has invalid value %q: %w", ib.Bidder, ib.Value, err)
		}
		bids = append(bids, groupedBid{
			DecimalBid: types.NewDecimalBid(ib.Bidder, value, ib.Bundle),
			group:      ib.Group,
		})
	}

	reserves := make(map[string]decimal.Decimal, len(instance.ReservePrices))
	for bidder, raw := range instance.ReservePrices {
		reserve, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("reserve price for %s is invalid: %w", bidder, err)
		}
		reserves[bidder] = reserve
	}

	eligible, rejected := core.EnforceReservePrices(bids, reserves)
	if len(rejected) > 0 {
		log.Printf("INFO: %d bids rejected by reserve prices", len(rejected))
	}

	// Bids sharing a non-empty group name are mutually exclusive; every
	// other bid stands alone.
	var bidGroups [][]core.Bid[string, string, decimal.Decimal]
	groupIndex := make(map[string]int)
	for _, bid := range eligible {
		name := bid.(groupedBid).group
		if name == "" {
			bidGroups = append(bidGroups, []core.Bid[string, string, decimal.Decimal]{bid})
			continue
		}
		idx, ok := groupIndex[name]
		if !ok {
			idx = len(bidGroups)
			groupIndex[name] = idx
			bidGroups = append(bidGroups, nil)
		}
		bidGroups[idx] = append(bidGroups[idx], bid)
	}

	var randSource core.RandSource
	if randomTieBreak {
		randSource = core.CryptoRand
	}

	result, err := core.RunAuctionExclusive(core.Supply[string](instance.Supply), bidGroups, randSource)
	if err != nil {
		return nil, err
	}
	result.ReserveRejected = rejected

	hash, err := core.ComputeResultHash(result)
	if err != nil {
		return nil, fmt.Errorf("hashing result: %w", err)
	}

	log.Printf("INFO: Auction run %s complete: %d winners, welfare=%s",
		runID, len(result.WinningBids), result.Welfare)

	output := &clearingOutput{
		RunID:      runID,
		Winners:    make([]winnerOutput, 0, len(result.WinningBids)),
		Payments:   make([]paymentOutput, 0, len(result.Payments)),
		Welfare:    result.Welfare.String(),
		ResultHash: hash,
	}
	for _, b := range result.WinningBids {
		output.Winners = append(output.Winners, winnerOutput{
			Bidder: b.BidderID(),
			Value:  b.Valuation().String(),
			Bundle: b.Bundle(),
		})
	}
	for _, p := range result.Payments {
		output.Payments = append(output.Payments, paymentOutput{
			Bidder: p.Bidder,
			Amount: p.Amount.String(),
		})
	}
	for _, b := range result.ReserveRejected {
		output.ReserveRejected = append(output.ReserveRejected, winnerOutput{
			Bidder: b.BidderID(),
			Value:  b.Valuation().String(),
			Bundle: b.Bundle(),
		})
	}
	return output, nil
}

func outputJSON(output *clearingOutput) {
	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(encoded))
}

func outputText(output *clearingOutput) {
	fmt.Printf("Auction run:   %s\n", output.RunID)
	fmt.Printf("Total welfare: %s\n", output.Welfare)
	fmt.Println()

	if len(output.Winners) == 0 {
		fmt.Println("No bids could be allocated.")
	} else {
		fmt.Println("Winners:")
		for _, w := range output.Winners {
			fmt.Printf("  %-12s value=%-8s bundle=%v\n", w.Bidder, w.Value, w.Bundle)
		}
		fmt.Println()
		fmt.Println("Payments:")
		for _, p := range output.Payments {
			fmt.Printf("  %-12s pays %s\n", p.Bidder, p.Amount)
		}
	}

	if len(output.ReserveRejected) > 0 {
		fmt.Println()
		fmt.Println("Rejected by reserve price:")
		for _, r := range output.ReserveRejected {
			fmt.Printf("  %-12s value=%s\n", r.Bidder, r.Value)
		}
	}

	fmt.Println()
	fmt.Printf("Result hash: %s\n", output.ResultHash)
}

func showUsage() {
	fmt.Println("VCG Auction Clearing")
	fmt.Println()
	fmt.Println("Computes the welfare-maximizing allocation and externality payments")
	fmt.Println("for a sealed-bid VCG auction instance.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  auction-clear --input <instance> [--format text|json] [--random-tiebreak]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
