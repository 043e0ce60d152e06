// Command ethashctl is a small diagnostic CLI over the ethash/progpow
// core: it reports epoch sizing and sweeps a list of candidate nonces
// against a header/difficulty pair, printing the first nonce (if any)
// that clears the proof-of-work boundary.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/erigontech/erigon-pow/consensus/ethash"
	"github.com/erigontech/erigon-pow/consensus/progpow"
	common "github.com/erigontech/erigon-pow/erigon-lib/common"
	log "github.com/erigontech/erigon-pow/erigon-lib/log/v3"
)

func main() {
	var (
		algo       = flag.String("algo", "ethash", "proof-of-work algorithm: ethash or progpow")
		block      = flag.Uint64("block", 0, "block number, selects the epoch/period")
		headerHex  = flag.String("header", "", "32-byte seal hash, hex encoded")
		difficulty = flag.String("difficulty", "1", "block difficulty, decimal")
		nonceList  = flag.String("nonces", "0", "comma-separated list of nonces to try")
		full       = flag.Bool("full", false, "verify against the full in-memory DAG instead of the light cache")
	)
	flag.Parse()

	log.Info("starting ethashctl", "args", log.RedactArgs(os.Args))

	ctx, cancel := common.RootContext()
	defer cancel()

	var header ethash.Hash256
	if *headerHex != "" {
		raw, err := hex.DecodeString(*headerHex)
		if err != nil || len(raw) != 32 {
			log.Error("invalid --header, want 32 bytes hex", "err", err)
			os.Exit(1)
		}
		copy(header[:], raw)
	}

	diff, ok := new(big.Int).SetString(*difficulty, 10)
	if !ok {
		log.Error("invalid --difficulty")
		os.Exit(1)
	}
	difficulty256, overflow := uint256.FromBig(diff)
	if overflow {
		log.Error("--difficulty overflows 256 bits")
		os.Exit(1)
	}
	boundary := ethash.BoundaryFromDifficulty(difficulty256)

	nonces := common.CliString2Array(*nonceList)

	epochs := ethash.NewEpochCache(2)
	local := ethash.NewLocalCache(epochs)
	defer local.Close()

	epoch := ethash.GetEpochFromBlock(*block)
	params := ethash.CalcEpochParams(epoch)
	log.Info("epoch sizing",
		"epoch", epoch,
		"lightCache", common.ByteCount(params.LightCacheSizeBytes),
		"fullDataset", common.ByteCount(params.FullDatasetSizeBytes),
	)

	epochCtx := local.Get(epoch, *full)

	for _, raw := range nonces {
		select {
		case <-ctx.Done():
			log.Info("interrupted, stopping sweep")
			return
		default:
		}

		nonce, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Error("skipping invalid nonce", "value", raw, "err", err)
			continue
		}

		var belowBoundary bool
		var mix ethash.Hash256
		if *algo == "progpow" {
			period := progpow.PeriodFromBlock(*block)
			result := progpow.Hash(epochCtx, period, header, nonce)
			mix = result.Mix
			belowBoundary = ethash.IsLessOrEqual(result.Final, boundary)
		} else {
			result := ethash.Hash(epochCtx, header, nonce)
			mix = result.Mix
			belowBoundary = ethash.IsLessOrEqual(result.Final, boundary)
		}

		if belowBoundary {
			fmt.Printf("nonce %d satisfies difficulty, mix=%s\n", nonce, mix.Hex())
			return
		}
	}
	fmt.Println("no candidate nonce satisfied the target difficulty")
}
