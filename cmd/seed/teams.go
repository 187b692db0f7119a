package main

import "github.com/Mac-Cooper1/Pick6/internal/domain"

// fbsTeams is the full FBS slate for the current season, grouped by conference.
var fbsTeams = []domain.Team{
	// SEC
	{Name: "Alabama", Conference: "SEC"},
	{Name: "Georgia", Conference: "SEC"},
	{Name: "Texas", Conference: "SEC"},
	{Name: "LSU", Conference: "SEC"},
	{Name: "Tennessee", Conference: "SEC"},
	{Name: "Florida", Conference: "SEC"},
	{Name: "Auburn", Conference: "SEC"},
	{Name: "Texas A&M", Conference: "SEC"},
	{Name: "Oklahoma", Conference: "SEC"},
	{Name: "Ole Miss", Conference: "SEC"},
	{Name: "Missouri", Conference: "SEC"},
	{Name: "Arkansas", Conference: "SEC"},
	{Name: "South Carolina", Conference: "SEC"},
	{Name: "Mississippi State", Conference: "SEC"},
	{Name: "Kentucky", Conference: "SEC"},
	{Name: "Vanderbilt", Conference: "SEC"},

	// Big Ten
	{Name: "Ohio State", Conference: "Big Ten"},
	{Name: "Michigan", Conference: "Big Ten"},
	{Name: "Penn State", Conference: "Big Ten"},
	{Name: "Oregon", Conference: "Big Ten"},
	{Name: "USC", Conference: "Big Ten"},
	{Name: "Washington", Conference: "Big Ten"},
	{Name: "Wisconsin", Conference: "Big Ten"},
	{Name: "Iowa", Conference: "Big Ten"},
	{Name: "Nebraska", Conference: "Big Ten"},
	{Name: "Michigan State", Conference: "Big Ten"},
	{Name: "Minnesota", Conference: "Big Ten"},
	{Name: "Maryland", Conference: "Big Ten"},
	{Name: "Rutgers", Conference: "Big Ten"},
	{Name: "Indiana", Conference: "Big Ten"},
	{Name: "Northwestern", Conference: "Big Ten"},
	{Name: "Purdue", Conference: "Big Ten"},
	{Name: "Illinois", Conference: "Big Ten"},
	{Name: "UCLA", Conference: "Big Ten"},

	// ACC
	{Name: "Clemson", Conference: "ACC"},
	{Name: "Florida State", Conference: "ACC"},
	{Name: "Miami", Conference: "ACC"},
	{Name: "North Carolina", Conference: "ACC"},
	{Name: "NC State", Conference: "ACC"},
	{Name: "Virginia Tech", Conference: "ACC"},
	{Name: "Louisville", Conference: "ACC"},
	{Name: "Duke", Conference: "ACC"},
	{Name: "Virginia", Conference: "ACC"},
	{Name: "Pitt", Conference: "ACC"},
	{Name: "Georgia Tech", Conference: "ACC"},
	{Name: "Boston College", Conference: "ACC"},
	{Name: "Syracuse", Conference: "ACC"},
	{Name: "Wake Forest", Conference: "ACC"},
	{Name: "California", Conference: "ACC"},
	{Name: "Stanford", Conference: "ACC"},
	{Name: "SMU", Conference: "ACC"},

	// Big 12
	{Name: "Utah", Conference: "Big 12"},
	{Name: "Kansas State", Conference: "Big 12"},
	{Name: "Oklahoma State", Conference: "Big 12"},
	{Name: "TCU", Conference: "Big 12"},
	{Name: "Baylor", Conference: "Big 12"},
	{Name: "Texas Tech", Conference: "Big 12"},
	{Name: "Kansas", Conference: "Big 12"},
	{Name: "Iowa State", Conference: "Big 12"},
	{Name: "West Virginia", Conference: "Big 12"},
	{Name: "UCF", Conference: "Big 12"},
	{Name: "Cincinnati", Conference: "Big 12"},
	{Name: "BYU", Conference: "Big 12"},
	{Name: "Houston", Conference: "Big 12"},
	{Name: "Arizona", Conference: "Big 12"},
	{Name: "Arizona State", Conference: "Big 12"},
	{Name: "Colorado", Conference: "Big 12"},

	// Independents
	{Name: "Notre Dame", Conference: "Independent"},
	{Name: "Army", Conference: "Independent"},
	{Name: "UMass", Conference: "Independent"},

	// American
	{Name: "Memphis", Conference: "American"},
	{Name: "Tulane", Conference: "American"},
	{Name: "South Florida", Conference: "American"},
	{Name: "Navy", Conference: "American"},
	{Name: "East Carolina", Conference: "American"},
	{Name: "Temple", Conference: "American"},
	{Name: "Tulsa", Conference: "American"},
	{Name: "UTSA", Conference: "American"},
	{Name: "North Texas", Conference: "American"},
	{Name: "UAB", Conference: "American"},
	{Name: "Rice", Conference: "American"},
	{Name: "Florida Atlantic", Conference: "American"},
	{Name: "Charlotte", Conference: "American"},

	// Mountain West
	{Name: "Boise State", Conference: "Mountain West"},
	{Name: "Fresno State", Conference: "Mountain West"},
	{Name: "San Diego State", Conference: "Mountain West"},
	{Name: "Air Force", Conference: "Mountain West"},
	{Name: "Colorado State", Conference: "Mountain West"},
	{Name: "Wyoming", Conference: "Mountain West"},
	{Name: "UNLV", Conference: "Mountain West"},
	{Name: "Utah State", Conference: "Mountain West"},
	{Name: "Nevada", Conference: "Mountain West"},
	{Name: "New Mexico", Conference: "Mountain West"},
	{Name: "San Jose State", Conference: "Mountain West"},
	{Name: "Hawaii", Conference: "Mountain West"},

	// Sun Belt
	{Name: "Troy", Conference: "Sun Belt"},
	{Name: "Coastal Carolina", Conference: "Sun Belt"},
	{Name: "James Madison", Conference: "Sun Belt"},
	{Name: "App State", Conference: "Sun Belt"},
	{Name: "Marshall", Conference: "Sun Belt"},
	{Name: "Georgia State", Conference: "Sun Belt"},
	{Name: "Georgia Southern", Conference: "Sun Belt"},
	{Name: "Louisiana", Conference: "Sun Belt"},
	{Name: "Arkansas State", Conference: "Sun Belt"},
	{Name: "South Alabama", Conference: "Sun Belt"},
	{Name: "Southern Miss", Conference: "Sun Belt"},
	{Name: "Old Dominion", Conference: "Sun Belt"},
	{Name: "Texas State", Conference: "Sun Belt"},
	{Name: "UL Monroe", Conference: "Sun Belt"},

	// MAC
	{Name: "Toledo", Conference: "MAC"},
	{Name: "Miami (OH)", Conference: "MAC"},
	{Name: "Ohio", Conference: "MAC"},
	{Name: "Northern Illinois", Conference: "MAC"},
	{Name: "Western Michigan", Conference: "MAC"},
	{Name: "Central Michigan", Conference: "MAC"},
	{Name: "Eastern Michigan", Conference: "MAC"},
	{Name: "Ball State", Conference: "MAC"},
	{Name: "Bowling Green", Conference: "MAC"},
	{Name: "Buffalo", Conference: "MAC"},
	{Name: "Kent State", Conference: "MAC"},
	{Name: "Akron", Conference: "MAC"},

	// CUSA
	{Name: "Liberty", Conference: "CUSA"},
	{Name: "Jacksonville State", Conference: "CUSA"},
	{Name: "New Mexico State", Conference: "CUSA"},
	{Name: "Western Kentucky", Conference: "CUSA"},
	{Name: "MTSU", Conference: "CUSA"},
	{Name: "Louisiana Tech", Conference: "CUSA"},
	{Name: "Sam Houston", Conference: "CUSA"},
	{Name: "Kennesaw State", Conference: "CUSA"},
	{Name: "UTEP", Conference: "CUSA"},
	{Name: "FIU", Conference: "CUSA"},
}
