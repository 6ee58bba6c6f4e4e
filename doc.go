// Package niche simulates the evolution of populations whose fitness depends on
// how well heritable genes let individuals react to a noisy, cyclic environment.
//
// Each generation every individual accumulates a lifetime payoff. Reproduction
// then draws a Poisson number of offspring per individual, corrects the total
// towards the niche's target size with either a fitness-ranked or a random
// policy, and replaces the generation with mutated copies of the parents.
//
// Basic usage:
//
//	// Load configuration
//	config, err := niche.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a population for the first niche
//	size, _ := config.TargetSize(0)
//	animals := niche.Founders(&config.Animal, phenotype, size)
//	factory := niche.NewAnimalFactory(&config.Animal, phenotype)
//	pop, err := niche.NewPopulation(config, 0, size, animals, factory, niche.NewRand(config.Population.Seed, 0))
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Let the animals react, then breed
//	for gen := 0; gen < config.Population.Generations; gen++ {
//		for t := 0; t < config.Population.Lifetime; t++ {
//			pop.React(e(t), cue(t), false)
//		}
//		if _, err := pop.Breed(); err != nil {
//			log.Fatalf("Error breeding: %v", err)
//		}
//	}
package niche
