package breed

import "github.com/turtacn/PetMatch-Engine/pkg/types/common"

// Registry groups recognized by the taxonomy.
const (
	GroupSporting    Group = "sporting"
	GroupWorking     Group = "working"
	GroupHound       Group = "hound"
	GroupToy         Group = "toy"
	GroupTerrier     Group = "terrier"
	GroupNonSporting Group = "non-sporting"
	GroupHerding     Group = "herding"
	GroupLonghair    Group = "longhair"
	GroupShorthair   Group = "shorthair"
	GroupPsittacine  Group = "psittacine"
)

// defaultBreeds is the built-in taxonomy. Names are the lookup keys.
var defaultBreeds = []Info{
	// Dogs.
	{Name: "Golden Retriever", Species: common.SpeciesDog, Group: GroupSporting, Size: SizeLarge, Energy: EnergyHigh,
		Temperament: []string{"friendly", "intelligent", "devoted", "playful"}},
	{Name: "Labrador Retriever", Species: common.SpeciesDog, Group: GroupSporting, Size: SizeLarge, Energy: EnergyHigh,
		Temperament: []string{"friendly", "intelligent", "outgoing", "playful"}},
	{Name: "German Shepherd", Species: common.SpeciesDog, Group: GroupHerding, Size: SizeLarge, Energy: EnergyHigh,
		Temperament: []string{"confident", "intelligent", "loyal", "courageous"}},
	{Name: "French Bulldog", Species: common.SpeciesDog, Group: GroupNonSporting, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"adaptable", "playful", "intelligent", "quiet"}},
	{Name: "Poodle", Species: common.SpeciesDog, Group: GroupNonSporting, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"intelligent", "active", "proud", "elegant"}},
	{Name: "Beagle", Species: common.SpeciesDog, Group: GroupHound, Size: SizeSmall, Energy: EnergyHigh,
		Temperament: []string{"friendly", "curious", "merry", "stubborn"}},
	{Name: "Rottweiler", Species: common.SpeciesDog, Group: GroupWorking, Size: SizeLarge, Energy: EnergyMedium,
		Temperament: []string{"loyal", "loving", "confident", "guardian"}},
	{Name: "Dachshund", Species: common.SpeciesDog, Group: GroupHound, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"clever", "lively", "courageous", "stubborn"}},
	{Name: "Siberian Husky", Species: common.SpeciesDog, Group: GroupWorking, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"loyal", "mischievous", "outgoing", "friendly"}},
	{Name: "Boxer", Species: common.SpeciesDog, Group: GroupWorking, Size: SizeLarge, Energy: EnergyHigh,
		Temperament: []string{"intelligent", "fun-loving", "active", "loyal"}},
	{Name: "Jack Russell Terrier", Species: common.SpeciesDog, Group: GroupTerrier, Size: SizeSmall, Energy: EnergyHigh,
		Temperament: []string{"alert", "active", "fearless", "intelligent"}},
	{Name: "Pomeranian", Species: common.SpeciesDog, Group: GroupToy, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"bold", "extroverted", "vivacious", "playful"}},
	{Name: "Chihuahua", Species: common.SpeciesDog, Group: GroupToy, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"charming", "graceful", "sassy", "loyal"}},
	{Name: "Great Dane", Species: common.SpeciesDog, Group: GroupWorking, Size: SizeGiant, Energy: EnergyLow,
		Temperament: []string{"friendly", "patient", "dependable", "noble"}},
	{Name: "Border Collie", Species: common.SpeciesDog, Group: GroupHerding, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"intelligent", "energetic", "alert", "responsive"}},
	{Name: "Australian Shepherd", Species: common.SpeciesDog, Group: GroupHerding, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"intelligent", "energetic", "alert", "loyal"}},
	{Name: "Corgi (Pembroke Welsh)", Species: common.SpeciesDog, Group: GroupHerding, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"affectionate", "intelligent", "alert", "active"}},
	{Name: "Bulldog", Species: common.SpeciesDog, Group: GroupNonSporting, Size: SizeMedium, Energy: EnergyLow,
		Temperament: []string{"friendly", "courageous", "calm", "dignified"}},
	{Name: "Yorkshire Terrier", Species: common.SpeciesDog, Group: GroupToy, Size: SizeSmall, Energy: EnergyHigh,
		Temperament: []string{"sprightly", "intelligent", "affectionate", "brave"}},
	{Name: "Maltese", Species: common.SpeciesDog, Group: GroupToy, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"gentle", "playful", "charming", "fearless"}},
	{Name: "Bernese Mountain Dog", Species: common.SpeciesDog, Group: GroupWorking, Size: SizeLarge, Energy: EnergyMedium,
		Temperament: []string{"good-natured", "calm", "strong", "loyal"}},
	{Name: "Shiba Inu", Species: common.SpeciesDog, Group: GroupNonSporting, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"alert", "active", "attentive", "independent"}},

	// Cats.
	{Name: "Maine Coon", Species: common.SpeciesCat, Group: GroupLonghair, Size: SizeLarge, Energy: EnergyMedium,
		Temperament: []string{"gentle", "friendly", "intelligent", "playful"}},
	{Name: "Siamese", Species: common.SpeciesCat, Group: GroupShorthair, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"vocal", "social", "intelligent", "active"}},
	{Name: "Persian", Species: common.SpeciesCat, Group: GroupLonghair, Size: SizeMedium, Energy: EnergyLow,
		Temperament: []string{"quiet", "sweet", "docile", "affectionate"}},
	{Name: "Bengal", Species: common.SpeciesCat, Group: GroupShorthair, Size: SizeMedium, Energy: EnergyHigh,
		Temperament: []string{"active", "playful", "curious", "intelligent"}},
	{Name: "Ragdoll", Species: common.SpeciesCat, Group: GroupLonghair, Size: SizeLarge, Energy: EnergyLow,
		Temperament: []string{"affectionate", "placid", "gentle", "relaxed"}},

	// Birds.
	{Name: "Budgerigar", Species: common.SpeciesBird, Group: GroupPsittacine, Size: SizeSmall, Energy: EnergyHigh,
		Temperament: []string{"social", "vocal", "playful", "curious"}},
	{Name: "Cockatiel", Species: common.SpeciesBird, Group: GroupPsittacine, Size: SizeSmall, Energy: EnergyMedium,
		Temperament: []string{"gentle", "social", "vocal", "affectionate"}},
}

// defaultGroupMatrix maps a pair of groups to an affinity score on
// [0,100]. Absent pairs fall back to the neutral default in GroupScore.
var defaultGroupMatrix = map[Group]map[Group]int{
	GroupSporting:    {GroupSporting: 95, GroupWorking: 60, GroupHound: 70, GroupToy: 40, GroupNonSporting: 65, GroupTerrier: 40, GroupHerding: 75},
	GroupWorking:     {GroupSporting: 60, GroupWorking: 90, GroupHound: 50, GroupToy: 20, GroupNonSporting: 60, GroupTerrier: 50, GroupHerding: 65},
	GroupHound:       {GroupSporting: 70, GroupWorking: 50, GroupHound: 95, GroupToy: 40, GroupNonSporting: 55, GroupTerrier: 45, GroupHerding: 60},
	GroupToy:         {GroupSporting: 40, GroupWorking: 20, GroupHound: 40, GroupToy: 95, GroupNonSporting: 70, GroupTerrier: 30, GroupHerding: 50},
	GroupTerrier:     {GroupSporting: 40, GroupWorking: 50, GroupHound: 45, GroupToy: 30, GroupNonSporting: 50, GroupTerrier: 90, GroupHerding: 45},
	GroupNonSporting: {GroupSporting: 65, GroupWorking: 60, GroupHound: 55, GroupToy: 70, GroupNonSporting: 90, GroupTerrier: 50, GroupHerding: 60},
	GroupHerding:     {GroupSporting: 75, GroupWorking: 65, GroupHound: 60, GroupToy: 50, GroupNonSporting: 60, GroupTerrier: 45, GroupHerding: 95},
	GroupLonghair:    {GroupLonghair: 95, GroupShorthair: 80},
	GroupShorthair:   {GroupLonghair: 80, GroupShorthair: 95},
	GroupPsittacine:  {GroupPsittacine: 90},
}

//Personal.AI order the ending
