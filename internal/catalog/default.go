package catalog

// Encoded display paths between the fixed points of the default trip.
const (
	pathHomeToLeeds       = "seogI~jtHzjDccF"
	pathHomeToHeadingley  = "seogI~jtHb[r`A"
	pathHeadingleyToLeeds = "oingIrlvHvnCwdH"
	pathLeedsToLoughboro  = "wyigIzfmHzneE_rcA"
	pathLoughboroToLeake  = "{icaIzshFclIswB"
	pathOverview          = "_~jgIzpmHvjhEc~aA"
)

// Default returns the authoritative St Chads View → East Leake catalog.
// Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		FirstMile: []Leg{
			{
				ID:                   "uber",
				CostAmount:           8.97,
				TotalDurationMinutes: 14,
				DistanceUnits:        3,
				PrimaryMode:          ModeTaxi,
				Segments: []Segment{
					{Mode: ModeTaxi, Label: "Uber", DurationMinutes: 14, DestinationName: "Leeds Station", LineColor: "#000000", IconID: IconCar, Polyline: pathHomeToLeeds},
				},
				Display: Display{
					Label:       "Uber",
					Detail:      "St Chads → Leeds Station",
					Description: "Fastest door-to-door.",
					IconID:      IconCar,
					Color:       "text-black",
					BgColor:     "bg-zinc-100",
					LineColor:   "#000000",
					WaitMinutes: intPtr(4),
				},
			},
			{
				ID:                   "bus",
				CostAmount:           2.00,
				TotalDurationMinutes: 23,
				DistanceUnits:        3,
				PrimaryMode:          ModeBus,
				Segments: []Segment{
					{Mode: ModeBus, Label: "Bus", DurationMinutes: 23, DestinationName: "Leeds Station", LineColor: "#0f766e", IconID: IconBus, Polyline: pathHomeToLeeds},
				},
				Display: Display{
					Label:                "Bus (Line 24)",
					Detail:               "5min walk + 16min bus",
					Description:          "Best balance.",
					IconID:               IconBus,
					Color:                "text-brand-dark",
					BgColor:              "bg-brand-light",
					LineColor:            "#0f766e",
					Recommended:          true,
					NextDepartureMinutes: intPtr(12),
				},
			},
			{
				ID:                   "drive_park",
				CostAmount:           24.89,
				TotalDurationMinutes: 15,
				DistanceUnits:        3,
				PrimaryMode:          ModeCar,
				Segments: []Segment{
					{Mode: ModeCar, Label: "Drive", DurationMinutes: 15, DestinationName: "Leeds Station", LineColor: "#3f3f46", IconID: IconCar, Polyline: pathHomeToLeeds},
				},
				Display: Display{
					Label:       "Drive & Park",
					Detail:      "Drive to Station",
					Description: "Flexibility.",
					IconID:      IconCar,
					Color:       "text-zinc-800",
					BgColor:     "bg-zinc-100",
					LineColor:   "#3f3f46",
				},
			},
			{
				ID:                   "train_walk_headingley",
				CostAmount:           3.40,
				TotalDurationMinutes: 28,
				DistanceUnits:        3,
				RiskScore:            2,
				PrimaryMode:          ModeWalk,
				Segments: []Segment{
					{Mode: ModeWalk, Label: "Walk", DurationMinutes: 18, DestinationName: "Headingley Station", LineColor: "#475569", IconID: IconFootprints, Polyline: pathHomeToHeadingley},
					{Mode: ModeTrain, Label: "Northern", DurationMinutes: 10, DestinationName: "Leeds Station", LineColor: "#1d4ed8", IconID: IconTrain, Polyline: pathHeadingleyToLeeds},
				},
				Display: Display{
					Label:       "Headingley (Walk)",
					Detail:      "18m Walk + 10m Train",
					Description: "Walking transfer.",
					IconID:      IconFootprints,
					Color:       "text-slate-600",
					BgColor:     "bg-slate-100",
					LineColor:   "#1d4ed8",
				},
			},
			{
				ID:                   "train_uber_headingley",
				CostAmount:           9.32,
				TotalDurationMinutes: 15,
				DistanceUnits:        3,
				RiskScore:            1,
				PrimaryMode:          ModeTaxi,
				Segments: []Segment{
					{Mode: ModeTaxi, Label: "Uber", DurationMinutes: 5, DestinationName: "Headingley Station", LineColor: "#000000", IconID: IconCar, Polyline: pathHomeToHeadingley},
					{Mode: ModeTrain, Label: "Northern", DurationMinutes: 10, DestinationName: "Leeds Station", LineColor: "#1d4ed8", IconID: IconTrain, Polyline: pathHeadingleyToLeeds},
				},
				Display: Display{
					Label:       "Uber + Northern",
					Detail:      "5m Uber + 10m Train",
					Description: "Fast transfer.",
					IconID:      IconCar,
					Color:       "text-slate-600",
					BgColor:     "bg-slate-100",
					LineColor:   "#1d4ed8",
					WaitMinutes: intPtr(3),
				},
			},
			{
				ID:                   "cycle",
				CostAmount:           0,
				TotalDurationMinutes: 17,
				DistanceUnits:        3,
				RiskScore:            1,
				PrimaryMode:          ModeBike,
				Segments: []Segment{
					{Mode: ModeBike, Label: "Bike", DurationMinutes: 17, DestinationName: "Leeds Station", LineColor: "#3b82f6", IconID: IconBike, Polyline: pathHomeToLeeds},
				},
				Display: Display{
					Label:       "Personal Bike",
					Detail:      "Cycle to Station",
					Description: "Zero emissions.",
					IconID:      IconBike,
					Color:       "text-blue-600",
					BgColor:     "bg-blue-100",
					LineColor:   "#3b82f6",
				},
			},
		},
		MainLeg: Leg{
			ID:                   "train_main",
			CostAmount:           25.70,
			TotalDurationMinutes: 102,
			DistanceUnits:        80,
			RiskScore:            1,
			PrimaryMode:          ModeTrain,
			Segments: []Segment{
				{Mode: ModeTrain, Label: "CrossCountry", DurationMinutes: 102, DestinationName: "Loughborough Station", LineColor: "#713e8d", IconID: IconTrain, Polyline: pathLeedsToLoughboro},
			},
			Display: Display{
				Label:     "CrossCountry",
				Detail:    "Leeds → Loughborough",
				IconID:    IconTrain,
				Color:     "text-[#713e8d]",
				BgColor:   "bg-indigo-100",
				LineColor: "#713e8d",
				Platform:  intPtr(4),
			},
		},
		LastMile: []Leg{
			{
				ID:                   "uber",
				CostAmount:           14.89,
				TotalDurationMinutes: 10,
				DistanceUnits:        5,
				PrimaryMode:          ModeTaxi,
				Segments: []Segment{
					{Mode: ModeTaxi, Label: "Uber", DurationMinutes: 10, DestinationName: "East Leake", LineColor: "#000000", IconID: IconCar, Polyline: pathLoughboroToLeake},
				},
				Display: Display{
					Label:       "Uber",
					Detail:      "Loughborough → East Leake",
					Description: "Reliable final leg.",
					IconID:      IconCar,
					Color:       "text-black",
					BgColor:     "bg-zinc-100",
					LineColor:   "#000000",
				},
			},
			{
				ID:                   "bus",
				CostAmount:           3.00,
				TotalDurationMinutes: 14,
				DistanceUnits:        5,
				RiskScore:            2,
				PrimaryMode:          ModeBus,
				Segments: []Segment{
					{Mode: ModeBus, Label: "Bus", DurationMinutes: 14, DestinationName: "East Leake", LineColor: "#0f766e", IconID: IconBus, Polyline: pathLoughboroToLeake},
				},
				Display: Display{
					Label:       "Bus (Line 1)",
					Detail:      "Walk 4min + Bus 10min",
					Description: "Short walk required.",
					IconID:      IconBus,
					Color:       "text-brand-dark",
					BgColor:     "bg-brand-light",
					LineColor:   "#0f766e",
					Recommended: true,
				},
			},
			{
				ID:                   "cycle",
				CostAmount:           0,
				TotalDurationMinutes: 24,
				DistanceUnits:        5,
				RiskScore:            1,
				PrimaryMode:          ModeBike,
				Segments: []Segment{
					{Mode: ModeBike, Label: "Bike", DurationMinutes: 24, DestinationName: "East Leake", LineColor: "#3b82f6", IconID: IconBike, Polyline: pathLoughboroToLeake},
				},
				Display: Display{
					Label:       "Personal Bike",
					Detail:      "Cycle to Dest",
					Description: "Scenic route.",
					IconID:      IconBike,
					Color:       "text-blue-600",
					BgColor:     "bg-blue-100",
					LineColor:   "#3b82f6",
				},
			},
		},
		// 1h 50m, 87 miles at 45p.
		Baseline: Baseline{
			TimeMinutes:   110,
			CostAmount:    39.15,
			DistanceUnits: 87,
		},
		OverviewPath: pathOverview,
	}
}

func intPtr(i int) *int {
	return &i
}
