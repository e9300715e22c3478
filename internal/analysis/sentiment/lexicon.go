package sentiment

type score struct {
	polarity     float64
	subjectivity float64
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nothing": {}, "nobody": {},
	"neither": {}, "nor": {}, "hardly": {}, "barely": {}, "cannot": {},
}

var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"totally":    1.4,
	"completely": 1.4,
	"absolutely": 1.4,
	"super":      1.3,
	"quite":      1.1,
	"pretty":     1.1,
	"slightly":   0.6,
	"somewhat":   0.7,
	"kinda":      0.7,
}

var lexicon = map[string]score{
	// positive
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"nice":        {0.6, 1.0},
	"happy":       {0.8, 1.0},
	"happier":     {0.7, 0.9},
	"glad":        {0.5, 1.0},
	"joyful":      {0.8, 0.9},
	"cheerful":    {0.8, 0.9},
	"delighted":   {0.7, 1.0},
	"pleased":     {0.5, 1.0},
	"excited":     {0.4, 0.75},
	"exciting":    {0.3, 0.8},
	"content":     {0.3, 0.6},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"lovely":      {0.5, 0.75},
	"wonderful":   {1.0, 1.0},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"fantastic":   {0.4, 0.9},
	"beautiful":   {0.85, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"perfect":     {1.0, 1.0},
	"calm":        {0.3, 0.75},
	"peaceful":    {0.5, 0.7},
	"relaxed":     {0.4, 0.6},
	"grateful":    {0.6, 0.8},
	"thankful":    {0.5, 0.7},
	"hopeful":     {0.5, 0.7},
	"proud":       {0.8, 1.0},
	"fun":         {0.3, 0.2},
	"funny":       {0.25, 1.0},
	"enjoy":       {0.4, 0.5},
	"enjoyed":     {0.4, 0.5},
	"fine":        {0.4167, 0.5},
	"okay":        {0.5, 0.5},
	"ok":          {0.5, 0.5},
	"positive":    {0.2273, 0.5455},
	"safe":        {0.5, 0.5},
	"strong":      {0.4333, 0.7333},
	"comfortable": {0.4, 0.75},
	"brilliant":   {0.9, 1.0},
	"glorious":    {0.8, 1.0},
	"superb":      {1.0, 1.0},
	"thrilled":    {0.7, 0.9},
	"blessed":     {0.6, 0.8},
	"surprised":   {0.1, 0.8},
	"amazed":      {0.3, 0.8},
	"interesting": {0.5, 0.5},
	"normal":      {0.15, 0.65},

	// negative
	"bad":          {-0.7, 0.6667},
	"worse":        {-0.4, 0.6},
	"worst":        {-1.0, 1.0},
	"terrible":     {-1.0, 1.0},
	"horrible":     {-1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"sad":          {-0.5, 1.0},
	"unhappy":      {-0.6, 0.9},
	"depressed":    {-0.6, 0.9},
	"depressing":   {-0.6, 0.8},
	"miserable":    {-1.0, 1.0},
	"gloomy":       {-0.6, 0.8},
	"lonely":       {-0.5, 0.8},
	"hurt":         {-0.5, 0.7},
	"pain":         {-0.5, 0.6},
	"painful":      {-0.7, 0.9},
	"angry":        {-0.5, 1.0},
	"furious":      {-0.8, 1.0},
	"mad":          {-0.625, 1.0},
	"annoyed":      {-0.4, 0.8},
	"annoying":     {-0.8, 0.9},
	"irritated":    {-0.4, 0.8},
	"frustrated":   {-0.6, 0.8},
	"frustrating":  {-0.6, 0.8},
	"hate":         {-0.8, 0.9},
	"hated":        {-0.8, 0.9},
	"scared":       {-0.5, 0.8},
	"afraid":       {-0.6, 0.9},
	"anxious":      {-0.25, 0.75},
	"worried":      {-0.4, 0.7},
	"nervous":      {-0.3, 0.8},
	"terrified":    {-0.9, 1.0},
	"frightened":   {-0.6, 0.8},
	"disgusted":    {-0.7, 0.9},
	"disgusting":   {-1.0, 1.0},
	"gross":        {-0.6, 0.8},
	"sick":         {-0.7143, 0.8571},
	"tired":        {-0.4, 0.7},
	"exhausted":    {-0.5, 0.8},
	"stressed":     {-0.5, 0.7},
	"upset":        {-0.4, 0.7},
	"broken":       {-0.4, 0.6},
	"hopeless":     {-0.8, 0.9},
	"helpless":     {-0.6, 0.8},
	"useless":      {-0.5, 0.5},
	"worthless":    {-0.8, 0.9},
	"alone":        {-0.3, 0.6},
	"difficult":    {-0.5, 1.0},
	"hard":         {-0.2917, 0.5417},
	"wrong":        {-0.5, 0.9},
	"stupid":       {-0.8, 1.0},
	"ugly":         {-0.7, 1.0},
	"boring":       {-1.0, 1.0},
	"dark":         {-0.15, 0.4},
	"negative":     {-0.3, 0.4},
	"dead":         {-0.2, 0.4},
	"devastated":   {-0.9, 1.0},
	"overwhelmed":  {-0.5, 0.8},
	"vulnerable":   {-0.3, 0.6},
	"shocked":      {-0.3, 0.8},
	"disappointed": {-0.75, 0.75},
	"crying":       {-0.5, 0.7},
}
