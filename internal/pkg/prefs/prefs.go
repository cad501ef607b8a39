// Package prefs holds the D8 preference vocabulary: the enums collected during
// onboarding and chosen per date session, and their canonical wire strings for
// the recommendation engine contract.
package prefs

// NotSure is the catch-all wire value every enum falls back to.
const NotSure = "not_sure"

type AgeBracket string

const (
	Age18To24 AgeBracket = "18-24"
	Age25To34 AgeBracket = "25-34"
	Age35To44 AgeBracket = "35-44"
	Age45To54 AgeBracket = "45-54"
	Age55To64 AgeBracket = "55-64"
	Age65Plus AgeBracket = "65+"
)

type RelationshipStatus string

const (
	StatusSingle  RelationshipStatus = "single"
	StatusDating  RelationshipStatus = "dating"
	StatusEngaged RelationshipStatus = "engaged"
	StatusMarried RelationshipStatus = "married"
)

type BudgetTier string

const (
	BudgetFree   BudgetTier = "free"
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
	BudgetLuxury BudgetTier = "luxury"
)

type Cuisine string

const (
	CuisineItalian       Cuisine = "italian"
	CuisineMexican       Cuisine = "mexican"
	CuisineAmerican      Cuisine = "american"
	CuisineJapanese      Cuisine = "japanese"
	CuisineChinese       Cuisine = "chinese"
	CuisineIndian        Cuisine = "indian"
	CuisineThai          Cuisine = "thai"
	CuisineFrench        Cuisine = "french"
	CuisineMediterranean Cuisine = "mediterranean"
	CuisineNotSure       Cuisine = NotSure
)

type Transportation string

const (
	TransportWalking       Transportation = "walking"
	TransportDriving       Transportation = "driving"
	TransportPublicTransit Transportation = "public_transit"
	TransportRideshare     Transportation = "rideshare"
	TransportCycling       Transportation = "cycling"
)

type Hobby string

const (
	HobbyHiking      Hobby = "hiking"
	HobbyCooking     Hobby = "cooking"
	HobbyMovies      Hobby = "movies"
	HobbyMusic       Hobby = "music"
	HobbyArt         Hobby = "art"
	HobbySports      Hobby = "sports"
	HobbyReading     Hobby = "reading"
	HobbyGaming      Hobby = "gaming"
	HobbyTravel      Hobby = "travel"
	HobbyPhotography Hobby = "photography"
)

type DateType string

const (
	DateTypeMeal     DateType = "meal"
	DateTypeActivity DateType = "activity"
)

type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealNotSure   MealTime = NotSure
)

type PriceRange string

const (
	PriceFree    PriceRange = "free"
	PriceLow     PriceRange = "low"
	PriceMedium  PriceRange = "medium"
	PriceHigh    PriceRange = "high"
	PriceLuxury  PriceRange = "luxury"
	PriceNotSure PriceRange = NotSure
)

type ActivityType string

const (
	ActivityOutdoor   ActivityType = "outdoor"
	ActivityIndoor    ActivityType = "indoor"
	ActivityCultural  ActivityType = "cultural"
	ActivityAdventure ActivityType = "adventure"
	ActivityRelaxing  ActivityType = "relaxing"
	ActivityNotSure   ActivityType = NotSure
)

type ActivityIntensity string

const (
	IntensityLow      ActivityIntensity = "low"
	IntensityModerate ActivityIntensity = "moderate"
	IntensityHigh     ActivityIntensity = "high"
	IntensityNotSure  ActivityIntensity = NotSure
)

// Canonical value tables. Every enum value the package exports appears here;
// Wire() on each type is total over its table and falls back to not_sure.
var (
	AgeBrackets = []AgeBracket{Age18To24, Age25To34, Age35To44, Age45To54, Age55To64, Age65Plus}

	RelationshipStatuses = []RelationshipStatus{StatusSingle, StatusDating, StatusEngaged, StatusMarried}

	BudgetTiers = []BudgetTier{BudgetFree, BudgetLow, BudgetMedium, BudgetHigh, BudgetLuxury}

	Cuisines = []Cuisine{
		CuisineItalian, CuisineMexican, CuisineAmerican, CuisineJapanese, CuisineChinese,
		CuisineIndian, CuisineThai, CuisineFrench, CuisineMediterranean, CuisineNotSure,
	}

	Transportations = []Transportation{
		TransportWalking, TransportDriving, TransportPublicTransit, TransportRideshare, TransportCycling,
	}

	Hobbies = []Hobby{
		HobbyHiking, HobbyCooking, HobbyMovies, HobbyMusic, HobbyArt,
		HobbySports, HobbyReading, HobbyGaming, HobbyTravel, HobbyPhotography,
	}

	DateTypes = []DateType{DateTypeMeal, DateTypeActivity}

	MealTimes = []MealTime{MealBreakfast, MealLunch, MealDinner, MealNotSure}

	PriceRanges = []PriceRange{PriceFree, PriceLow, PriceMedium, PriceHigh, PriceLuxury, PriceNotSure}

	ActivityTypes = []ActivityType{
		ActivityOutdoor, ActivityIndoor, ActivityCultural, ActivityAdventure, ActivityRelaxing, ActivityNotSure,
	}

	ActivityIntensities = []ActivityIntensity{IntensityLow, IntensityModerate, IntensityHigh, IntensityNotSure}
)

func wire[T ~string](v T, known []T) string {
	for _, k := range known {
		if v == k {
			return string(v)
		}
	}
	return NotSure
}

func (v AgeBracket) Wire() string         { return wire(v, AgeBrackets) }
func (v RelationshipStatus) Wire() string { return wire(v, RelationshipStatuses) }
func (v BudgetTier) Wire() string         { return wire(v, BudgetTiers) }
func (v Cuisine) Wire() string            { return wire(v, Cuisines) }
func (v Transportation) Wire() string     { return wire(v, Transportations) }
func (v Hobby) Wire() string              { return wire(v, Hobbies) }
func (v DateType) Wire() string           { return wire(v, DateTypes) }
func (v MealTime) Wire() string           { return wire(v, MealTimes) }
func (v PriceRange) Wire() string         { return wire(v, PriceRanges) }
func (v ActivityType) Wire() string       { return wire(v, ActivityTypes) }
func (v ActivityIntensity) Wire() string  { return wire(v, ActivityIntensities) }

// WireAll maps a set-valued selection to its wire strings, preserving order.
func WireAll[T interface{ Wire() string }](vs []T) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Wire())
	}
	return out
}
