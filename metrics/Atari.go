package metrics

// AtariBaselines holds the published random-play and human reference
// scores for the Atari suite, keyed by plain game name. Normalizing
// raw episodic returns against these baselines maps random play to 0
// and human play to 1, which makes scores comparable across games.
var AtariBaselines = ScoreTable{
	"alien":             {Random: 227.8, Human: 7127.7},
	"amidar":            {Random: 5.8, Human: 1719.5},
	"assault":           {Random: 222.4, Human: 742.0},
	"asterix":           {Random: 210.0, Human: 8503.3},
	"asteroids":         {Random: 719.1, Human: 47388.7},
	"atlantis":          {Random: 12850.0, Human: 29028.1},
	"bank_heist":        {Random: 14.2, Human: 753.1},
	"battle_zone":       {Random: 2360.0, Human: 37187.5},
	"beam_rider":        {Random: 363.9, Human: 16926.5},
	"berzerk":           {Random: 123.7, Human: 2630.4},
	"bowling":           {Random: 23.1, Human: 160.7},
	"boxing":            {Random: 0.1, Human: 12.1},
	"breakout":          {Random: 1.7, Human: 30.5},
	"centipede":         {Random: 2090.9, Human: 12017.0},
	"chopper_command":   {Random: 811.0, Human: 7387.8},
	"crazy_climber":     {Random: 10780.5, Human: 35829.4},
	"defender":          {Random: 2874.5, Human: 18688.9},
	"demon_attack":      {Random: 152.1, Human: 1971.0},
	"double_dunk":       {Random: -18.6, Human: -16.4},
	"enduro":            {Random: 0.0, Human: 860.5},
	"fishing_derby":     {Random: -91.7, Human: -38.7},
	"freeway":           {Random: 0.0, Human: 29.6},
	"frostbite":         {Random: 65.2, Human: 4334.7},
	"gopher":            {Random: 257.6, Human: 2412.5},
	"gravitar":          {Random: 173.0, Human: 3351.4},
	"hero":              {Random: 1027.0, Human: 30826.4},
	"ice_hockey":        {Random: -11.2, Human: 0.9},
	"jamesbond":         {Random: 29.0, Human: 302.8},
	"kangaroo":          {Random: 52.0, Human: 3035.0},
	"krull":             {Random: 1598.0, Human: 2665.5},
	"kung_fu_master":    {Random: 258.5, Human: 22736.3},
	"montezuma_revenge": {Random: 0.0, Human: 4753.3},
	"ms_pacman":         {Random: 307.3, Human: 6951.6},
	"name_this_game":    {Random: 2292.3, Human: 8049.0},
	"phoenix":           {Random: 761.4, Human: 7242.6},
	"pitfall":           {Random: -229.4, Human: 6463.7},
	"pong":              {Random: -20.7, Human: 14.6},
	"private_eye":       {Random: 24.9, Human: 69571.3},
	"qbert":             {Random: 163.9, Human: 13455.0},
	"riverraid":         {Random: 1338.5, Human: 17118.0},
	"road_runner":       {Random: 11.5, Human: 7845.0},
	"robotank":          {Random: 2.2, Human: 11.9},
	"seaquest":          {Random: 68.4, Human: 42054.7},
	"skiing":            {Random: -17098.1, Human: -4336.9},
	"solaris":           {Random: 1236.3, Human: 12326.7},
	"space_invaders":    {Random: 148.0, Human: 1668.7},
	"star_gunner":       {Random: 664.0, Human: 10250.0},
	"surround":          {Random: -10.0, Human: 6.5},
	"tennis":            {Random: -23.8, Human: -8.3},
	"time_pilot":        {Random: 3568.0, Human: 5229.2},
	"tutankham":         {Random: 11.4, Human: 167.6},
	"up_n_down":         {Random: 533.4, Human: 11693.2},
	"venture":           {Random: 0.0, Human: 1187.5},
	"video_pinball":     {Random: 16256.9, Human: 17667.9},
	"wizard_of_wor":     {Random: 563.5, Human: 4756.5},
	"yars_revenge":      {Random: 3092.9, Human: 54576.9},
	"zaxxon":            {Random: 32.5, Human: 9173.3},
}
