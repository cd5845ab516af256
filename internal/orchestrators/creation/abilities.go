package creation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// standardArray is the 5e standard ability score array.
var standardArray = []int{15, 14, 13, 12, 10, 8}

// pointBuyArray is a 27-point spread favoring the top three abilities.
var pointBuyArray = []int{15, 14, 13, 10, 10, 10}

// classPriorities orders the six abilities from most to least important for
// each class. Scores are assigned highest-first along this order.
var classPriorities = map[string][]string{
	dnd5e.ClassBarbarian: {dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyIntelligence},
	dnd5e.ClassBard:      {dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyStrength},
	dnd5e.ClassCleric:    {dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyIntelligence},
	dnd5e.ClassDruid:     {dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyStrength},
	dnd5e.ClassFighter:   {dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyIntelligence},
	dnd5e.ClassMonk:      {dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyCharisma},
	dnd5e.ClassPaladin:   {dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyIntelligence},
	dnd5e.ClassRanger:    {dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyStrength, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyCharisma},
	dnd5e.ClassRogue:     {dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyStrength},
	dnd5e.ClassSorcerer:  {dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyStrength},
	dnd5e.ClassWarlock:   {dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyStrength},
	dnd5e.ClassWizard:    {dnd5e.AbilityKeyIntelligence, dnd5e.AbilityKeyConstitution, dnd5e.AbilityKeyDexterity, dnd5e.AbilityKeyWisdom, dnd5e.AbilityKeyCharisma, dnd5e.AbilityKeyStrength},
}

// generateAbilityScores produces ability scores for the requested method,
// assigning higher values to the abilities the class cares about most.
func generateAbilityScores(methodID, classID string) (dnd5e.AbilityScores, error) {
	var values []int

	switch methodID {
	case dnd5e.MethodStandardArray:
		values = append([]int(nil), standardArray...)
	case dnd5e.MethodPointBuy:
		values = append([]int(nil), pointBuyArray...)
	case dnd5e.MethodRoll:
		rolled, err := rollAbilityValues()
		if err != nil {
			return dnd5e.AbilityScores{}, err
		}
		values = rolled
	default:
		return dnd5e.AbilityScores{}, errors.InvalidArgumentf("unknown ability score method: %s", methodID)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	priority, ok := classPriorities[classID]
	if !ok {
		priority = dnd5e.Abilities
	}

	scores := make(map[string]int, len(priority))
	for i, ability := range priority {
		scores[ability] = values[i]
	}

	return dnd5e.FromMap(scores), nil
}

// rollAbilityValues rolls 4d6 drop lowest once per ability.
func rollAbilityValues() ([]int, error) {
	values := make([]int, 0, len(dnd5e.Abilities))
	for range dnd5e.Abilities {
		total, err := rollFourDropLowest()
		if err != nil {
			return nil, err
		}
		values = append(values, total)
	}
	return values, nil
}

// rollFourDropLowest rolls 4d6 and sums the best three. Individual dice come
// out of the roll description ("+4d6[3,4,5,2]=14") since the toolkit doesn't
// expose them directly.
func rollFourDropLowest() (int, error) {
	roll, err := dice.NewRoll(4, 6)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create dice roll")
	}

	description := roll.GetDescription()

	individual := parseDiceDescription(description)
	if len(individual) != 4 {
		return 0, errors.Internalf("failed to parse dice from description: %s", description)
	}

	return sumDropLowest(individual), nil
}

// sumDropLowest sums the dice minus the lowest one.
func sumDropLowest(values []int) int {
	lowest := values[0]
	sum := 0
	for _, d := range values {
		sum += d
		if d < lowest {
			lowest = d
		}
	}
	return sum - lowest
}

func parseDiceDescription(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int
	for _, ds := range strings.Split(description[start+1:end], ",") {
		d, err := strconv.Atoi(strings.TrimSpace(ds))
		if err != nil {
			return nil
		}
		values = append(values, d)
	}
	return values
}
