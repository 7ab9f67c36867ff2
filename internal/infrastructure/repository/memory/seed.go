package memory

import (
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
)

// SeedPlayers returns a compact projection catalog for DB-less development.
// Production loads the full catalog through the projections sync job instead.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "josh-allen-qb", Name: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback, ByeWeek: bye(12), Projection: 388.4, ADP: adp(22.0)},
		{ID: "lamar-jackson-qb", Name: "Lamar Jackson", Team: "BAL", Position: player.PositionQuarterback, ByeWeek: bye(14), Projection: 381.2, ADP: adp(24.5)},
		{ID: "jalen-hurts-qb", Name: "Jalen Hurts", Team: "PHI", Position: player.PositionQuarterback, ByeWeek: bye(5), Projection: 361.9, ADP: adp(38.0)},
		{ID: "joe-burrow-qb", Name: "Joe Burrow", Team: "CIN", Position: player.PositionQuarterback, ByeWeek: bye(12), Projection: 348.6, ADP: adp(41.5)},
		{ID: "patrick-mahomes-qb", Name: "Patrick Mahomes", Team: "KC", Position: player.PositionQuarterback, ByeWeek: bye(6), Projection: 330.1, ADP: adp(62.0)},
		{ID: "jayden-daniels-qb", Name: "Jayden Daniels", Team: "WAS", Position: player.PositionQuarterback, ByeWeek: bye(14), Projection: 327.5, ADP: adp(49.0)},
		{ID: "cj-stroud-qb", Name: "C.J. Stroud", Team: "HOU", Position: player.PositionQuarterback, ByeWeek: bye(7), Projection: 301.8, ADP: adp(96.0)},
		{ID: "jordan-love-qb", Name: "Jordan Love", Team: "GB", Position: player.PositionQuarterback, ByeWeek: bye(10), Projection: 289.3},

		{ID: "bijan-robinson-rb", Name: "Bijan Robinson", Team: "ATL", Position: player.PositionRunningBack, ByeWeek: bye(11), Projection: 289.7, ADP: adp(1.8)},
		{ID: "jahmyr-gibbs-rb", Name: "Jahmyr Gibbs", Team: "DET", Position: player.PositionRunningBack, ByeWeek: bye(9), Projection: 281.0, ADP: adp(3.2)},
		{ID: "saquon-barkley-rb", Name: "Saquon Barkley", Team: "PHI", Position: player.PositionRunningBack, ByeWeek: bye(5), Projection: 272.4, ADP: adp(4.6)},
		{ID: "christian-mccaffrey-rb", Name: "Christian McCaffrey", Team: "SF", Position: player.PositionRunningBack, ByeWeek: bye(13), Projection: 254.9, ADP: adp(9.1)},
		{ID: "derrick-henry-rb", Name: "Derrick Henry", Team: "BAL", Position: player.PositionRunningBack, ByeWeek: bye(14), Projection: 247.2, ADP: adp(11.3)},
		{ID: "ashton-jeanty-rb", Name: "Ashton Jeanty", Team: "LV", Position: player.PositionRunningBack, ByeWeek: bye(8), Projection: 238.8, ADP: adp(12.7)},
		{ID: "devon-achane-rb", Name: "De'Von Achane", Team: "MIA", Position: player.PositionRunningBack, ByeWeek: bye(10), Projection: 231.5, ADP: adp(14.9)},
		{ID: "jonathan-taylor-rb", Name: "Jonathan Taylor", Team: "IND", Position: player.PositionRunningBack, ByeWeek: bye(11), Projection: 226.0, ADP: adp(16.4)},
		{ID: "josh-jacobs-rb", Name: "Josh Jacobs", Team: "GB", Position: player.PositionRunningBack, ByeWeek: bye(10), Projection: 219.6, ADP: adp(19.8)},
		{ID: "bucky-irving-rb", Name: "Bucky Irving", Team: "TB", Position: player.PositionRunningBack, ByeWeek: bye(9), Projection: 212.3, ADP: adp(21.5)},
		{ID: "kyren-williams-rb", Name: "Kyren Williams", Team: "LAR", Position: player.PositionRunningBack, ByeWeek: bye(8), Projection: 204.1, ADP: adp(28.6)},
		{ID: "james-cook-rb", Name: "James Cook", Team: "BUF", Position: player.PositionRunningBack, ByeWeek: bye(12), Projection: 198.8, ADP: adp(31.0)},
		{ID: "chase-brown-rb", Name: "Chase Brown", Team: "CIN", Position: player.PositionRunningBack, ByeWeek: bye(12), Projection: 190.4, ADP: adp(34.2)},
		{ID: "kenneth-walker-iii-rb", Name: "Kenneth Walker III", Team: "SEA", Position: player.PositionRunningBack, ByeWeek: bye(7), Projection: 182.9, ADP: adp(43.7)},

		{ID: "jamarr-chase-wr", Name: "Ja'Marr Chase", Team: "CIN", Position: player.PositionWideReceiver, ByeWeek: bye(12), Projection: 298.3, ADP: adp(1.2)},
		{ID: "justin-jefferson-wr", Name: "Justin Jefferson", Team: "MIN", Position: player.PositionWideReceiver, ByeWeek: bye(6), Projection: 277.6, ADP: adp(3.9)},
		{ID: "ceedee-lamb-wr", Name: "CeeDee Lamb", Team: "DAL", Position: player.PositionWideReceiver, ByeWeek: bye(10), Projection: 266.1, ADP: adp(6.5)},
		{ID: "puka-nacua-wr", Name: "Puka Nacua", Team: "LAR", Position: player.PositionWideReceiver, ByeWeek: bye(8), Projection: 258.7, ADP: adp(7.8)},
		{ID: "amon-ra-st-brown-wr", Name: "Amon-Ra St. Brown", Team: "DET", Position: player.PositionWideReceiver, ByeWeek: bye(9), Projection: 252.0, ADP: adp(8.4)},
		{ID: "malik-nabers-wr", Name: "Malik Nabers", Team: "NYG", Position: player.PositionWideReceiver, ByeWeek: bye(14), Projection: 243.5, ADP: adp(10.6)},
		{ID: "nico-collins-wr", Name: "Nico Collins", Team: "HOU", Position: player.PositionWideReceiver, ByeWeek: bye(7), Projection: 235.2, ADP: adp(13.8)},
		{ID: "brian-thomas-jr-wr", Name: "Brian Thomas Jr.", Team: "JAC", Position: player.PositionWideReceiver, ByeWeek: bye(11), Projection: 229.8, ADP: adp(15.3)},
		{ID: "drake-london-wr", Name: "Drake London", Team: "ATL", Position: player.PositionWideReceiver, ByeWeek: bye(11), Projection: 223.4, ADP: adp(17.0)},
		{ID: "ak-brown-wr", Name: "A.J. Brown", Team: "PHI", Position: player.PositionWideReceiver, ByeWeek: bye(5), Projection: 218.9, ADP: adp(18.2)},
		{ID: "tee-higgins-wr", Name: "Tee Higgins", Team: "CIN", Position: player.PositionWideReceiver, ByeWeek: bye(12), Projection: 207.6, ADP: adp(25.4)},
		{ID: "tyreek-hill-wr", Name: "Tyreek Hill", Team: "MIA", Position: player.PositionWideReceiver, ByeWeek: bye(10), Projection: 201.3, ADP: adp(27.1)},
		{ID: "davante-adams-wr", Name: "Davante Adams", Team: "LAR", Position: player.PositionWideReceiver, ByeWeek: bye(8), Projection: 193.8, ADP: adp(33.5)},
		{ID: "garrett-wilson-wr", Name: "Garrett Wilson", Team: "NYJ", Position: player.PositionWideReceiver, ByeWeek: bye(9), Projection: 188.5, ADP: adp(36.9)},
		{ID: "marvin-harrison-jr-wr", Name: "Marvin Harrison Jr.", Team: "ARI", Position: player.PositionWideReceiver, ByeWeek: bye(8), Projection: 181.2, ADP: adp(44.0)},
		{ID: "dk-metcalf-wr", Name: "DK Metcalf", Team: "PIT", Position: player.PositionWideReceiver, ByeWeek: bye(5), Projection: 174.6, ADP: adp(52.8)},

		{ID: "brock-bowers-te", Name: "Brock Bowers", Team: "LV", Position: player.PositionTightEnd, ByeWeek: bye(8), Projection: 204.7, ADP: adp(20.3)},
		{ID: "trey-mcbride-te", Name: "Trey McBride", Team: "ARI", Position: player.PositionTightEnd, ByeWeek: bye(8), Projection: 191.5, ADP: adp(29.7)},
		{ID: "george-kittle-te", Name: "George Kittle", Team: "SF", Position: player.PositionTightEnd, ByeWeek: bye(13), Projection: 172.8, ADP: adp(46.2)},
		{ID: "sam-laporta-te", Name: "Sam LaPorta", Team: "DET", Position: player.PositionTightEnd, ByeWeek: bye(9), Projection: 158.4, ADP: adp(68.5)},
		{ID: "tj-hockenson-te", Name: "T.J. Hockenson", Team: "MIN", Position: player.PositionTightEnd, ByeWeek: bye(6), Projection: 146.9, ADP: adp(84.0)},
		{ID: "mark-andrews-te", Name: "Mark Andrews", Team: "BAL", Position: player.PositionTightEnd, ByeWeek: bye(14), Projection: 138.2},

		{ID: "justin-tucker-k", Name: "Justin Tucker", Team: "BAL", Position: player.PositionKicker, ByeWeek: bye(14), Projection: 148.5, ADP: adp(142.0)},
		{ID: "brandon-aubrey-k", Name: "Brandon Aubrey", Team: "DAL", Position: player.PositionKicker, ByeWeek: bye(10), Projection: 146.1, ADP: adp(131.5)},
		{ID: "jake-moody-k", Name: "Jake Moody", Team: "SF", Position: player.PositionKicker, ByeWeek: bye(13), Projection: 139.7, ADP: adp(156.3)},
		{ID: "cameron-dicker-k", Name: "Cameron Dicker", Team: "LAC", Position: player.PositionKicker, ByeWeek: bye(12), Projection: 137.4, ADP: adp(160.8)},

		{ID: "ravens-dst", Name: "Baltimore Ravens", Team: "BAL", Position: player.PositionDefense, ByeWeek: bye(14), Projection: 128.3, ADP: adp(134.6)},
		{ID: "steelers-dst", Name: "Pittsburgh Steelers", Team: "PIT", Position: player.PositionDefense, ByeWeek: bye(5), Projection: 124.9, ADP: adp(140.2)},
		{ID: "broncos-dst", Name: "Denver Broncos", Team: "DEN", Position: player.PositionDefense, ByeWeek: bye(7), Projection: 122.6, ADP: adp(138.4)},
		{ID: "texans-dst", Name: "Houston Texans", Team: "HOU", Position: player.PositionDefense, ByeWeek: bye(7), Projection: 118.0, ADP: adp(151.9)},
	}
}

// SeedLevels mirrors the defaults the migration inserts into replacement_levels.
func SeedLevels() []valuation.Level {
	return []valuation.Level{
		{Position: player.PositionQuarterback, Rank: 22, Notes: "QB replacement level - 22nd ranked QB"},
		{Position: player.PositionRunningBack, Rank: 36, Notes: "RB replacement level - 36th ranked RB"},
		{Position: player.PositionWideReceiver, Rank: 48, Notes: "WR replacement level - 48th ranked WR"},
		{Position: player.PositionTightEnd, Rank: 18, Notes: "TE replacement level - 18th ranked TE"},
		{Position: player.PositionKicker, Rank: 12, Notes: "K replacement level - 12th ranked K"},
		{Position: player.PositionDefense, Rank: 12, Notes: "DST replacement level - 12th ranked DST"},
	}
}

func bye(week int) *int { return &week }

func adp(v float64) *float64 { return &v }
