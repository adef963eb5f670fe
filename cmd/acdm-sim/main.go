package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"acdm_platform/contract"
	"acdm_platform/sdk"

	"github.com/echa/log"
	"github.com/spf13/viper"
)

var (
	configPath string
	scriptPath string
	verbose    bool
	flags      = flag.NewFlagSet("acdm-sim", flag.ContinueOnError)
)

func init() {
	flags.Usage = func() {}
	flags.StringVar(&configPath, "config", "", "deployment config file (yaml)")
	flags.StringVar(&scriptPath, "script", "", "scenario script, stdin when empty")
	flags.BoolVar(&verbose, "v", false, "log every emitted event line")
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v\n", err)
	}
}

// initConfig sets up our Viper config object with the reference deployment.
func initConfig(config *viper.Viper) error {
	config.SetDefault("owner", "user:owner")
	config.SetDefault("chairperson", "user:chairperson")
	config.SetDefault("minimumQuorumEth", int64(150))
	config.SetDefault("debatingPeriodHours", int64(24))
	config.SetDefault("roundTimeDays", int64(3))
	config.SetDefault("stakingRewardFloatEth", int64(1_000_000))
	config.SetDefault("poolLiquidityTokens", int64(1_000))
	config.SetDefault("poolLiquidityEth", int64(10))
	if configPath == "" {
		return nil
	}
	config.SetConfigFile(configPath)
	return config.ReadInConfig()
}

type sim struct {
	ledger *sdk.MockLedger
	pool   *sdk.MockPool
	clock  *sdk.MockClock
	dep    *contract.Deployment
}

func run() error {
	err := flags.Parse(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			fmt.Printf("Usage: %s [flags]\n", os.Args[0])
			fmt.Println("\nFlags")
			flags.PrintDefaults()
			return nil
		}
		return err
	}

	config := viper.New()
	if err := initConfig(config); err != nil {
		return err
	}

	st := contract.NewMockState()
	ledger := sdk.NewMockLedger()
	pool := sdk.NewMockPool("contract:pool", ledger)
	clock := sdk.NewMockClock(0)
	events := sdk.FuncLogger(func(line string) {
		if verbose {
			log.Infof("event %s", line)
		}
	})

	dep, err := contract.Deploy(st, ledger, pool, clock, events, contract.DeployConfig{
		Owner:                 sdk.Address(config.GetString("owner")),
		Chairperson:           sdk.Address(config.GetString("chairperson")),
		MinimumQuorum:         contract.Amount(config.GetInt64("minimumQuorumEth")) * contract.GweiPerEth,
		DebatingPeriodSeconds: config.GetInt64("debatingPeriodHours") * 3600,
		RoundTimeSeconds:      config.GetInt64("roundTimeDays") * 24 * 3600,
		StakingRewardFloat:    contract.Amount(config.GetInt64("stakingRewardFloatEth")) * contract.GweiPerEth,
		PoolLiquidityTokens:   contract.Amount(config.GetInt64("poolLiquidityTokens")) * contract.GweiPerEth,
		PoolLiquidityEth:      contract.Amount(config.GetInt64("poolLiquidityEth")) * contract.GweiPerEth,
	})
	if err != nil {
		return err
	}
	log.Infof("deployed staking=%s dao=%s platform=%s lp=%s",
		dep.Staking.Addr(), dep.DAO.Addr(), dep.Platform.Addr(), dep.LPAsset)

	s := &sim{ledger: ledger, pool: pool, clock: clock, dep: dep}

	in := os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(strings.Fields(line)); err != nil {
			log.Errorf("%s: %v", line, err)
		}
	}
	return scanner.Err()
}

// exec dispatches one scenario command, roughly one per on-chain task.
func (s *sim) exec(args []string) error {
	cmd, args := args[0], args[1:]
	if len(args) == 0 && cmd != "status" {
		return fmt.Errorf("missing argument")
	}
	switch cmd {
	case "advance":
		secs, err := num(args, 0)
		if err != nil {
			return err
		}
		s.clock.Advance(secs)
		log.Infof("clock now %d", s.clock.Now())
	case "fund":
		amount, err := num(args, 2)
		if err != nil {
			return err
		}
		return s.ledger.Mint(addr(args[0]), sdk.Asset(args[1]), amount)
	case "approve":
		amount, err := num(args, 3)
		if err != nil {
			return err
		}
		s.ledger.Approve(addr(args[0]), s.spender(args[1]), sdk.Asset(args[2]), amount)
	case "balance":
		if len(args) < 2 {
			return fmt.Errorf("usage: balance <addr> <asset>")
		}
		log.Infof("%s %s = %d", args[0], args[1], s.ledger.Balance(addr(args[0]), sdk.Asset(args[1])))
	case "register":
		ref := sdk.Address("")
		if len(args) > 1 {
			ref = addr(args[1])
			if ref.Domain() != sdk.AddressDomainUser {
				return fmt.Errorf("referrer %s is not a user account", ref)
			}
		}
		return s.dep.Platform.Register(addr(args[0]), ref)
	case "stake":
		amount, err := num(args, 1)
		if err != nil {
			return err
		}
		return s.dep.Staking.Stake(addr(args[0]), contract.Amount(amount))
	case "unstake":
		return s.dep.Staking.Unstake(addr(args[0]))
	case "claim":
		reward, err := s.dep.Staking.Claim(addr(args[0]))
		if err != nil {
			return err
		}
		log.Infof("claimed %d", reward)
	case "start-sale":
		return s.dep.Platform.StartSaleRound(addr(args[0]))
	case "start-trade":
		return s.dep.Platform.StartTradeRound(addr(args[0]))
	case "buy":
		value, err := num(args, 1)
		if err != nil {
			return err
		}
		tokens, err := s.dep.Platform.BuyACDM(addr(args[0]), contract.Amount(value))
		if err != nil {
			return err
		}
		log.Infof("bought %d micro acdm", tokens)
	case "add-order":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-order <seller> <tokens> <gwei>")
		}
		tokens, _ := strconv.ParseInt(args[1], 10, 64)
		eth, _ := strconv.ParseInt(args[2], 10, 64)
		id, err := s.dep.Platform.AddOrder(addr(args[0]), contract.Amount(tokens), contract.Amount(eth))
		if err != nil {
			return err
		}
		log.Infof("order %d created", id)
	case "remove-order":
		id, err := num(args, 1)
		if err != nil {
			return err
		}
		return s.dep.Platform.RemoveOrder(addr(args[0]), uint64(id))
	case "redeem":
		if len(args) < 3 {
			return fmt.Errorf("usage: redeem <buyer> <order> <gwei>")
		}
		id, _ := strconv.ParseUint(args[1], 10, 64)
		value, _ := strconv.ParseInt(args[2], 10, 64)
		tokens, err := s.dep.Platform.RedeemOrder(addr(args[0]), id, contract.Amount(value))
		if err != nil {
			return err
		}
		log.Infof("redeemed %d micro acdm", tokens)
	case "propose":
		if len(args) < 4 {
			return fmt.Errorf("usage: propose <chair> <recipient> <kind> <value> [addr] [desc]")
		}
		kind, _ := strconv.ParseUint(args[2], 10, 8)
		value, _ := strconv.ParseUint(args[3], 10, 64)
		c := contract.Command{Kind: contract.CommandKind(kind), Value: value}
		desc := ""
		if len(args) > 4 {
			c.Addr = addr(args[4])
		}
		if len(args) > 5 {
			desc = strings.Join(args[5:], " ")
		}
		id, err := s.dep.DAO.AddProposal(addr(args[0]), s.spender(args[1]), c, desc)
		if err != nil {
			return err
		}
		log.Infof("proposal %d opened", id)
	case "vote":
		if len(args) < 3 {
			return fmt.Errorf("usage: vote <voter> <proposal> for|against")
		}
		id, _ := strconv.ParseUint(args[1], 10, 64)
		return s.dep.DAO.Vote(addr(args[0]), id, args[2] == "against")
	case "finish":
		id, err := num(args, 1)
		if err != nil {
			return err
		}
		status, err := s.dep.DAO.FinishProposal(addr(args[0]), uint64(id))
		if err != nil {
			return err
		}
		log.Infof("proposal %d finished: %s", id, status)
	case "status":
		p := s.dep.Platform
		log.Infof("round %d (%s) ends=%d price=%d supply=%d turnover=%d pot=%d",
			p.RoundsNum(), p.CurrentRound(), p.RoundEndsAt(), p.SalePrice(),
			p.SaleSupply(), p.TradeTurnover(), p.InternalBalance())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// spender resolves the short contract aliases used in scripts.
func (s *sim) spender(name string) sdk.Address {
	switch name {
	case "staking":
		return s.dep.Staking.Addr()
	case "dao":
		return s.dep.DAO.Addr()
	case "platform":
		return s.dep.Platform.Addr()
	case "pool":
		return s.pool.Addr()
	default:
		return addr(name)
	}
}

// addr accepts bare names as user accounts so scripts stay terse.
func addr(name string) sdk.Address {
	if strings.Contains(name, ":") {
		return sdk.Address(name)
	}
	return sdk.Address("user:" + name)
}

// num parses the int argument at idx with a uniform error.
func num(args []string, idx int) (int64, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("missing argument")
	}
	n, err := strconv.ParseInt(args[idx], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", args[idx])
	}
	return n, nil
}
