package main

import (
	"fmt"
	"math/rand"

	"parcelhub/internal/generated/servers"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedSizes = []string{
	string(servers.ParcelSizeSmall),
	string(servers.ParcelSizeMedium),
	string(servers.ParcelSizeLarge),
	string(servers.ParcelSizeExtraLarge),
}

func newSeedCommand(v *viper.Viper) *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create fake parcels for demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			c, err := signedInClient(cmd.Context(), v)
			if err != nil {
				return err
			}

			fake := faker.New()
			if seed != 0 {
				fake = faker.NewWithSeed(rand.NewSource(seed))
			}

			bar := progressbar.NewOptions(count,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("seeding parcels"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			created := 0
			var lastErr error
			for range count {
				if _, err := c.CreateParcel(cmd.Context(), fakeParcel(fake)); err != nil {
					lastErr = err
				} else {
					created++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d parcels\n", created, count)
			if created == 0 && lastErr != nil {
				return lastErr
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 20, "Number of parcels to create")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed; 0 picks a random one")
	return cmd
}

func fakeParcel(fake faker.Faker) servers.NewParcel {
	pincode := fake.Numerify("5#####")
	email := fake.Internet().Email()
	fragile := fake.IntBetween(0, 4) == 0
	signature := fake.IntBetween(0, 2) == 0

	p := servers.NewParcel{
		CustomerName:      fake.Person().Name(),
		CustomerPhone:     fake.Phone().Number(),
		CustomerEmail:     &email,
		PickupAddress:     fake.Address().Address(),
		DeliveryAddress:   fake.Address().Address(),
		Pincode:           &pincode,
		ParcelSize:        servers.ParcelSize(fake.RandomStringElement(seedSizes)),
		Weight:            float64(fake.IntBetween(1, 250)) / 10,
		IsFragile:         &fragile,
		RequiresSignature: &signature,
	}
	if fragile {
		note := "Handle with care"
		p.SpecialInstructions = &note
	}
	return p
}
