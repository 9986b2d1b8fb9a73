// Package builder assembles computer-shaped products step by step.
//
// A Builder exposes four construction steps (case, motherboard, cpu, ram)
// that each fill one field of the product it is working on and return the
// builder, so calls can be chained. A Director drives any Builder through
// the steps in that fixed order and hands back the finished product:
//
//	var d builder.Director[*builder.Computer]
//	pc := d.Construct(builder.NewGamingComputerBuilder())
//	fmt.Println(pc) // Computer: Case=Gaming Case, ...
//
// GamingComputerBuilder and OfficeComputerBuilder produce *Computer values
// with component descriptions. ComputerPackage satisfies the same contract
// but produces a *Package carrying packaging descriptions instead.
package builder
