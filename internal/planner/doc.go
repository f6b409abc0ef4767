// Package planner implements the household trackers: the day planner, the
// cleaning-routine tracker, and the food-preference tally. All three are
// thin rule layers over the JSON file store.
package planner
