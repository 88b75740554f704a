// Command showcase walks through the fleet, media and payment models:
// every vehicle describes itself and moves, every item describes itself,
// a library lists what it holds, and each payment method takes a charge.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/domain/media"
	"github.com/alem-hub/gradebook/internal/domain/payment"
	"github.com/alem-hub/gradebook/internal/domain/vehicle"
	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
	"github.com/alem-hub/gradebook/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output:  os.Stderr,
		Level:   logger.ParseLevel(cfg.Observability.LogLevel),
		Format:  logger.ParseFormat(cfg.Observability.LogFormat),
		Service: cfg.App.Name + "-showcase",
	})
	slog.SetDefault(log)

	if err := run(os.Stdout, log, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

type showcase struct {
	out io.Writer
	log *slog.Logger
}

func (s *showcase) say(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}

func (s *showcase) pay(m payment.Method, amount float64) {
	receipt, err := m.Pay(amount)
	if err != nil {
		s.log.Debug("payment refused", "method", string(m.Kind()), logger.Err(err))
		s.say(presenter.PaymentError(m.Kind(), amount, err))
		return
	}
	s.say(presenter.Payment(receipt))
}

func run(out io.Writer, log *slog.Logger, now func() time.Time) error {
	s := &showcase{out: out, log: log}

	fleet, err := buildFleet()
	if err != nil {
		return fmt.Errorf("build fleet: %w", err)
	}
	s.say(presenter.Section("Fleet"))
	for _, v := range fleet {
		s.say(presenter.Vehicle(v)...)
		s.say("")
	}

	items, err := buildMedia()
	if err != nil {
		return fmt.Errorf("build media: %w", err)
	}
	s.say(presenter.Section("Media"))
	for _, item := range items {
		s.say(item.Describe()...)
		s.say("")
	}

	library := media.NewLibrary("City Library")
	for _, item := range items {
		if item.Kind() != media.KindBook {
			continue
		}
		if err := library.Add(item); err != nil {
			return fmt.Errorf("shelve %q: %w", item.Info().Title(), err)
		}
	}
	s.say(presenter.Section(library.Name()))
	s.say(library.Catalog()...)
	s.say("")

	card, err := payment.NewCreditCard("John Doe", "1234 5678 9012 3456", "12/2030", "123", payment.WithClock(now))
	if err != nil {
		return fmt.Errorf("open card: %w", err)
	}
	secret, err := password.New("s3cret")
	if err != nil {
		return err
	}
	account, err := payment.NewPayPal("john@example.com", secret)
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}

	s.say(presenter.Section("Payments"))
	s.pay(account, 40)
	if err := account.SignIn("s3cret"); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	for i, m := range []payment.Method{card, account} {
		s.pay(m, float64(250*(i+1)))
	}
	s.pay(card, 0)

	log.Info("showcase finished",
		"vehicles", len(fleet),
		"media", len(items),
		"shelved", library.Len(),
	)
	return nil
}

func buildFleet() ([]vehicle.Vehicle, error) {
	car, err := vehicle.NewCar("Ford", "Mustang", "Red")
	if err != nil {
		return nil, err
	}
	moto, err := vehicle.NewMotorcycle("Honda", "CBR", 1000)
	if err != nil {
		return nil, err
	}
	truck, err := vehicle.NewTruck("Ford", "F-150", "Black", 1000)
	if err != nil {
		return nil, err
	}
	tesla, err := vehicle.NewElectricCar("Tesla", "Model 3", "Red", 100)
	if err != nil {
		return nil, err
	}
	return []vehicle.Vehicle{car, moto, truck, tesla}, nil
}

func buildMedia() ([]media.Item, error) {
	gatsbyInfo, err := media.NewInfo("The Great Gatsby", "F. Scott Fitzgerald", 1925)
	if err != nil {
		return nil, err
	}
	gatsby, err := media.NewBook(gatsbyInfo, 180, "Classic")
	if err != nil {
		return nil, err
	}

	natGeoInfo, err := media.NewInfo("National Geographic", "National Geographic Society", 2024)
	if err != nil {
		return nil, err
	}
	natGeo, err := media.NewMagazine(natGeoInfo, "Nature", "Monthly")
	if err != nil {
		return nil, err
	}

	nytInfo, err := media.NewInfo("The New York Times", "The New York Times Company", 2024)
	if err != nil {
		return nil, err
	}
	nyt, err := media.NewNewspaper(nytInfo, "Politics", "Daily")
	if err != nil {
		return nil, err
	}

	orwellInfo, err := media.NewInfo("1984", "George Orwell", 1949)
	if err != nil {
		return nil, err
	}
	orwell, err := media.NewBook(orwellInfo, 328, "Dystopian")
	if err != nil {
		return nil, err
	}

	return []media.Item{gatsby, natGeo, nyt, orwell}, nil
}
